package schedule

// Phase identifies where a stepwise scheduler is in its lifecycle. It is
// exposed for logging and tests; transitions are driven entirely by Rate.
type Phase int

const (
	// PhaseUninitialized is the state before the first Rate call.
	PhaseUninitialized Phase = iota

	// PhaseReplaying is the transient state while the first call
	// fast-forwards the decay rule to a non-zero counter.
	PhaseReplaying

	// PhaseSlowStart is active while the update counter is inside the
	// configured slow-start window.
	PhaseSlowStart

	// PhaseSteadyDecay is the ordinary state: the rate decays once per
	// boundary crossing.
	PhaseSteadyDecay

	// PhaseFloored is entered when the decayed rate reaches the configured
	// floor. The rate no longer changes; counters still advance.
	PhaseFloored
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseReplaying:
		return "replaying"
	case PhaseSlowStart:
		return "slow-start"
	case PhaseSteadyDecay:
		return "steady-decay"
	case PhaseFloored:
		return "floored"
	default:
		return "unknown"
	}
}
