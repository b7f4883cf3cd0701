package schedule

import "errors"

// Sentinel errors for the schedule package.
// Use errors.Is to check: errors.Is(err, schedule.ErrCounterRegressed)
var (
	// ErrInvalidConfig wraps every construction-time validation failure.
	ErrInvalidConfig = errors.New("schedule: invalid config")

	// ErrCounterRegressed is returned by Rate when the update counter is
	// smaller than one observed earlier on the same instance. Repeating
	// the previous counter is allowed; going backwards is a caller bug.
	ErrCounterRegressed = errors.New("schedule: update counter regressed")
)
