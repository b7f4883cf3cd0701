package schedule

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
)

// CosineConfig configures a Cosine scheduler.
// Zero values produce defaults; see field comments.
type CosineConfig struct {
	MaxRate   float64      `json:"max_rate"`   // rate at update 0; zero → 0.01
	MinRate   float64      `json:"min_rate"`   // rate after MaxUpdate updates; zero → 0
	MaxUpdate int          `json:"max_update"` // annealing horizon; required, ≥ 1
	Logger    *slog.Logger `json:"-"`          // nil → slog.Default()
}

// Cosine anneals the learning rate along a half cosine wave:
//
//	rate = MinRate + (MaxRate - MinRate) * (1 + cos(π * n / MaxUpdate)) / 2
//
// and stays at MinRate once the counter reaches MaxUpdate. Unlike the
// stepwise schedulers the rate is a pure function of the counter, so resume
// after a checkpoint needs no replay; the monotonic-counter contract still
// holds. Rate changes are logged at debug level since the rate moves on
// nearly every update.
type Cosine struct {
	maxRate   float64
	minRate   float64
	maxUpdate int

	last     int
	lastRate float64
	seen     bool

	logger *slog.Logger
}

// NewCosine creates a Cosine scheduler from the given config.
// Zero-value fields are filled with defaults; invalid values return an
// error wrapping ErrInvalidConfig.
func NewCosine(cfg CosineConfig) (*Cosine, error) {
	if cfg.MaxRate == 0 {
		cfg.MaxRate = 0.01
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if cfg.MinRate < 0 {
		return nil, fmt.Errorf("%w: min rate %g must not be negative", ErrInvalidConfig, cfg.MinRate)
	}
	if cfg.MaxRate <= cfg.MinRate {
		return nil, fmt.Errorf("%w: max rate %g must exceed min rate %g",
			ErrInvalidConfig, cfg.MaxRate, cfg.MinRate)
	}
	if cfg.MaxUpdate < 1 {
		return nil, fmt.Errorf("%w: max update must be at least 1, got %d", ErrInvalidConfig, cfg.MaxUpdate)
	}

	return &Cosine{
		maxRate:   cfg.MaxRate,
		minRate:   cfg.MinRate,
		maxUpdate: cfg.MaxUpdate,
		logger:    cfg.Logger,
	}, nil
}

// Rate implements Scheduler.
func (c *Cosine) Rate(numUpdate int) (float64, error) {
	if numUpdate < 0 {
		return 0, fmt.Errorf("%w: update counter %d is negative", ErrCounterRegressed, numUpdate)
	}
	if c.seen && numUpdate < c.last {
		return 0, fmt.Errorf("%w: got update %d after %d", ErrCounterRegressed, numUpdate, c.last)
	}

	rate := c.minRate
	if numUpdate < c.maxUpdate {
		span := c.maxRate - c.minRate
		rate = c.minRate + span*(1+math.Cos(math.Pi*float64(numUpdate)/float64(c.maxUpdate)))/2
	}

	if c.seen && rate != c.lastRate {
		c.logger.Debug("learning rate changed", "update", numUpdate, "rate", rate)
	}
	c.seen = true
	c.last = numUpdate
	c.lastRate = rate
	return rate, nil
}

// MarshalJSON implements json.Marshaler.
func (c *Cosine) MarshalJSON() ([]byte, error) {
	return json.Marshal(CosineConfig{
		MaxRate:   c.maxRate,
		MinRate:   c.minRate,
		MaxUpdate: c.maxUpdate,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the scheduler from the serialized config.
func (c *Cosine) UnmarshalJSON(data []byte) error {
	var cfg CosineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	rebuilt, err := NewCosine(cfg)
	if err != nil {
		return err
	}
	*c = *rebuilt
	return nil
}
