package schedule

// rule is the pure decay rule behind a stepwise scheduler: it maps boundary
// crossings of the update counter to multiplicative rate decays. Rules carry
// no ordering checks and no logging; the facade owns both. Checkpoint replay
// and per-call catch-up share the advance loop, so replaying a counter in
// one shot ends in exactly the state reached by stepping through every
// intermediate value.
type rule interface {
	// advance applies every boundary crossing up to numUpdate and reports
	// how many crossings were applied.
	advance(numUpdate int) int

	// rate returns the current base rate.
	rate() float64

	// floored reports whether the rate is clamped at its minimum and can
	// no longer decrease.
	floored() bool
}

// intervalRule decays the rate once per fixed-width interval:
//
//	rate = initial * factor^(crossings)
//
// A boundary is crossed when numUpdate > count+interval. The rate is clamped
// below at floor; crossings past the clamp still advance count so later
// calls do not re-evaluate them.
type intervalRule struct {
	interval int
	factor   float64
	floor    float64

	count   int // last decay boundary
	lr      float64
	clamped bool
}

func (r *intervalRule) advance(numUpdate int) int {
	n := 0
	for numUpdate > r.count+r.interval {
		r.count += r.interval
		n++
		if r.clamped {
			continue
		}
		r.lr *= r.factor
		if r.lr < r.floor {
			r.lr = r.floor
			r.clamped = true
		}
	}
	return n
}

func (r *intervalRule) rate() float64 { return r.lr }
func (r *intervalRule) floored() bool { return r.clamped }

// milestoneRule decays the rate once per consumed milestone. Milestones are
// strictly increasing; cur indexes the next unconsumed one. No floor.
type milestoneRule struct {
	milestones []int
	factor     float64

	cur int
	lr  float64
}

func (r *milestoneRule) advance(numUpdate int) int {
	n := 0
	for r.cur < len(r.milestones) && numUpdate > r.milestones[r.cur] {
		r.cur++
		r.lr *= r.factor
		n++
	}
	return n
}

func (r *milestoneRule) rate() float64 { return r.lr }
func (r *milestoneRule) floored() bool { return false }
