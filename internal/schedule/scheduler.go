package schedule

import (
	"fmt"
	"log/slog"
)

// Scheduler maps a monotonically non-decreasing update counter to a learning
// rate. One instance belongs to one training run; Rate is not safe for
// concurrent use.
type Scheduler interface {
	// Rate returns the learning rate for the given update counter.
	//
	// numUpdate is roughly the number of optimizer steps executed so far.
	// It must be non-decreasing across calls: it may repeat the previous
	// value and may jump forward by more than one (for example after
	// resuming from a checkpoint), but passing a counter smaller than any
	// previously passed value returns ErrCounterRegressed.
	Rate(numUpdate int) (float64, error)
}

// stepwise is the shared facade behind the boundary-crossing schedulers
// (Factor and MultiFactor): the ordering guard, checkpoint replay on first
// use, the slow-start window, and rate-change logging. The decay itself
// lives in the rule.
type stepwise struct {
	rule   rule
	factor float64

	phase     Phase
	slowUntil int     // 0 disables slow start
	slowRate  float64 // cached override, valid in PhaseSlowStart

	last     int     // highest counter observed
	lastRate float64 // last returned rate
	seen     bool

	logger *slog.Logger
}

func newStepwise(r rule, factor float64, slowUntil int, logger *slog.Logger) stepwise {
	if logger == nil {
		logger = slog.Default()
	}
	return stepwise{
		rule:      r,
		factor:    factor,
		phase:     PhaseUninitialized,
		slowUntil: slowUntil,
		logger:    logger,
	}
}

// Phase returns the scheduler's current lifecycle phase.
func (s *stepwise) Phase() Phase { return s.phase }

func (s *stepwise) rateFor(numUpdate int) (float64, error) {
	if numUpdate < 0 {
		return 0, fmt.Errorf("%w: update counter %d is negative", ErrCounterRegressed, numUpdate)
	}
	if s.seen && numUpdate < s.last {
		return 0, fmt.Errorf("%w: got update %d after %d", ErrCounterRegressed, numUpdate, s.last)
	}

	// Checkpoint replay: the first call with a non-zero counter
	// fast-forwards the rule through every crossing in (0, numUpdate].
	// It runs at most once; the same loop handles the per-call delta on
	// every later call, so a replayed counter ends in exactly the state
	// sequential delivery reaches. Replay emits no per-crossing records.
	if s.phase == PhaseUninitialized && numUpdate > 0 {
		s.phase = PhaseReplaying
	}
	s.rule.advance(numUpdate)

	prev := s.phase
	var rate float64
	switch {
	case s.slowUntil > 0 && numUpdate <= s.slowUntil:
		if prev != PhaseSlowStart {
			// Computed once on window entry and cached. The window
			// never reopens: the counter is monotonic and the
			// threshold fixed.
			s.slowRate = s.rule.rate() * s.factor
		}
		s.phase = PhaseSlowStart
		rate = s.slowRate
	case s.rule.floored():
		s.phase = PhaseFloored
		rate = s.rule.rate()
	default:
		s.phase = PhaseSteadyDecay
		rate = s.rule.rate()
	}

	switch {
	case s.phase == PhaseSlowStart && prev != PhaseSlowStart:
		s.logger.Info("entering slow start", "update", numUpdate, "rate", rate)
	case prev == PhaseSlowStart && s.phase != PhaseSlowStart:
		s.logger.Info("leaving slow start", "update", numUpdate, "rate", rate)
	case s.phase == PhaseFloored && prev != PhaseFloored:
		s.logger.Info("learning rate floored", "update", numUpdate, "rate", rate)
	case s.seen && rate != s.lastRate:
		s.logger.Info("learning rate changed", "update", numUpdate, "rate", rate)
	}

	s.seen = true
	s.last = numUpdate
	s.lastRate = rate
	return rate, nil
}
