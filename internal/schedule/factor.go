package schedule

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// FactorConfig configures a Factor scheduler.
// Zero values produce defaults; see field comments.
type FactorConfig struct {
	Rate      float64      `json:"rate"`       // initial learning rate; zero → 0.01
	Interval  int          `json:"interval"`   // updates between decay boundaries; required, ≥ 1
	Factor    float64      `json:"factor"`     // decay multiplier in (0, 1]; zero → 1.0
	Floor     float64      `json:"floor"`      // minimum rate; zero → 1e-8
	SlowStart int          `json:"slow_start"` // slow-start window; zero → disabled, else < Interval
	Logger    *slog.Logger `json:"-"`          // nil → slog.Default()
}

// Factor reduces the learning rate by a fixed factor every Interval updates.
//
// After n updates the rate is
//
//	rate = Rate * Factor^floor(n/Interval)
//
// clamped below at Floor. Once the clamp triggers the rate stays at Floor;
// later boundary crossings are still recorded so they are not re-evaluated
// on every call. A single call may cross several boundaries (for example
// after a checkpoint resume) and applies the decay once per crossing.
//
// With SlowStart set, every update in [0, SlowStart] returns the cached
// override Rate*Factor instead of the base rate; past the window the
// scheduler returns the base rate as if the window had never existed.
type Factor struct {
	stepwise
	cfg FactorConfig
}

// NewFactor creates a Factor scheduler from the given config.
// Zero-value fields are filled with defaults; invalid values return an
// error wrapping ErrInvalidConfig.
func NewFactor(cfg FactorConfig) (*Factor, error) {
	if cfg.Rate == 0 {
		cfg.Rate = 0.01
	}
	if cfg.Factor == 0 {
		cfg.Factor = 1.0
	}
	if cfg.Floor == 0 {
		cfg.Floor = 1e-8
	}

	if cfg.Rate < 0 {
		return nil, fmt.Errorf("%w: rate %g must be positive", ErrInvalidConfig, cfg.Rate)
	}
	if cfg.Interval < 1 {
		return nil, fmt.Errorf("%w: interval must be at least 1, got %d", ErrInvalidConfig, cfg.Interval)
	}
	if cfg.Factor < 0 || cfg.Factor > 1.0 {
		return nil, fmt.Errorf("%w: factor %g must be in (0, 1]", ErrInvalidConfig, cfg.Factor)
	}
	if cfg.Floor < 0 {
		return nil, fmt.Errorf("%w: floor %g must be positive", ErrInvalidConfig, cfg.Floor)
	}
	if cfg.SlowStart < 0 {
		return nil, fmt.Errorf("%w: slow start %d must not be negative", ErrInvalidConfig, cfg.SlowStart)
	}
	if cfg.SlowStart >= cfg.Interval && cfg.SlowStart > 0 {
		return nil, fmt.Errorf("%w: slow start %d must be less than the interval %d",
			ErrInvalidConfig, cfg.SlowStart, cfg.Interval)
	}

	r := &intervalRule{
		interval: cfg.Interval,
		factor:   cfg.Factor,
		floor:    cfg.Floor,
		lr:       cfg.Rate,
	}
	return &Factor{
		stepwise: newStepwise(r, cfg.Factor, cfg.SlowStart, cfg.Logger),
		cfg:      cfg,
	}, nil
}

// Rate implements Scheduler.
func (f *Factor) Rate(numUpdate int) (float64, error) {
	return f.rateFor(numUpdate)
}

// MarshalJSON implements json.Marshaler. Only the configuration is
// serialized; counters are rebuilt on resume through checkpoint replay.
func (f *Factor) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.cfg)
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the scheduler from the serialized config.
func (f *Factor) UnmarshalJSON(data []byte) error {
	var cfg FactorConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	rebuilt, err := NewFactor(cfg)
	if err != nil {
		return err
	}
	*f = *rebuilt
	return nil
}
