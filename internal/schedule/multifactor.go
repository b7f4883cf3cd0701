package schedule

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
)

// MultiFactorConfig configures a MultiFactor scheduler.
// Zero values produce defaults; see field comments.
type MultiFactorConfig struct {
	Rate       float64      `json:"rate"`       // initial learning rate; zero → 0.01
	Milestones []int        `json:"milestones"` // update counts to decay at; required, strictly increasing, all ≥ 1
	Factor     float64      `json:"factor"`     // decay multiplier in (0, 1]; zero → 1.0
	SlowStart  int          `json:"slow_start"` // slow-start window; zero → disabled, else < Milestones[0]
	Logger     *slog.Logger `json:"-"`          // nil → slog.Default()
}

// MultiFactor reduces the learning rate by a fixed factor at explicit
// milestone update counts.
//
// After n updates the rate is
//
//	rate = Rate * Factor^(number of milestones strictly below n)
//
// Each milestone is consumed exactly once; a single call may consume
// several when the counter jumps past them. No floor applies.
type MultiFactor struct {
	stepwise
	cfg MultiFactorConfig
}

// NewMultiFactor creates a MultiFactor scheduler from the given config.
// Zero-value fields are filled with defaults; invalid values return an
// error wrapping ErrInvalidConfig.
func NewMultiFactor(cfg MultiFactorConfig) (*MultiFactor, error) {
	if cfg.Rate == 0 {
		cfg.Rate = 0.01
	}
	if cfg.Factor == 0 {
		cfg.Factor = 1.0
	}

	if cfg.Rate < 0 {
		return nil, fmt.Errorf("%w: rate %g must be positive", ErrInvalidConfig, cfg.Rate)
	}
	if len(cfg.Milestones) == 0 {
		return nil, fmt.Errorf("%w: at least one milestone is required", ErrInvalidConfig)
	}
	for i, m := range cfg.Milestones {
		if m < 1 {
			return nil, fmt.Errorf("%w: milestone %d must be at least 1, got %d", ErrInvalidConfig, i, m)
		}
		if i > 0 && m <= cfg.Milestones[i-1] {
			return nil, fmt.Errorf("%w: milestones must be strictly increasing, got %d after %d",
				ErrInvalidConfig, m, cfg.Milestones[i-1])
		}
	}
	if cfg.Factor < 0 || cfg.Factor > 1.0 {
		return nil, fmt.Errorf("%w: factor %g must be in (0, 1]", ErrInvalidConfig, cfg.Factor)
	}
	if cfg.SlowStart < 0 {
		return nil, fmt.Errorf("%w: slow start %d must not be negative", ErrInvalidConfig, cfg.SlowStart)
	}
	if cfg.SlowStart >= cfg.Milestones[0] {
		return nil, fmt.Errorf("%w: slow start %d must be less than the first milestone %d",
			ErrInvalidConfig, cfg.SlowStart, cfg.Milestones[0])
	}

	cfg.Milestones = slices.Clone(cfg.Milestones)
	r := &milestoneRule{
		milestones: cfg.Milestones,
		factor:     cfg.Factor,
		lr:         cfg.Rate,
	}
	return &MultiFactor{
		stepwise: newStepwise(r, cfg.Factor, cfg.SlowStart, cfg.Logger),
		cfg:      cfg,
	}, nil
}

// Rate implements Scheduler.
func (m *MultiFactor) Rate(numUpdate int) (float64, error) {
	return m.rateFor(numUpdate)
}

// MarshalJSON implements json.Marshaler. Only the configuration is
// serialized; counters are rebuilt on resume through checkpoint replay.
func (m *MultiFactor) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.cfg)
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the scheduler from the serialized config.
func (m *MultiFactor) UnmarshalJSON(data []byte) error {
	var cfg MultiFactorConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	rebuilt, err := NewMultiFactor(cfg)
	if err != nil {
		return err
	}
	*m = *rebuilt
	return nil
}
