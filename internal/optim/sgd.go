package optim

import (
	"fmt"

	"github.com/anneal-ml/anneal/internal/schedule"
)

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate SGD in relevant directions and dampens
// oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for step := range steps {
//	    grads := computeGradients(params)
//	    optimizer.Step(params, grads)
//	}
type SGD struct {
	lr       float64
	momentum float64
	velocity []float64
	schedulable
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))

	// Scheduler, when set, supplies the learning rate once per Step,
	// keyed by the optimizer's update counter.
	Scheduler schedule.Scheduler

	// BeginUpdate offsets the update counter for runs resumed from a
	// checkpoint. The scheduler replays the skipped updates on the first
	// Step so the resumed run sees the same rates as an uninterrupted one.
	BeginUpdate int
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
		schedulable: schedulable{
			sched:     config.Scheduler,
			numUpdate: config.BeginUpdate,
		},
	}
}

// Step performs a single optimization step, updating params in place.
//
// Without momentum: param -= lr * grad. With momentum the velocity buffer
// is allocated lazily on the first step.
func (s *SGD) Step(params, grads []float64) error {
	if len(params) != len(grads) {
		return fmt.Errorf("optim: params/grads length mismatch: %d vs %d", len(params), len(grads))
	}

	lr, err := s.nextLR(s.lr)
	if err != nil {
		return err
	}
	s.lr = lr

	if s.momentum == 0 {
		for i, g := range grads {
			params[i] -= lr * g
		}
		return nil
	}

	if s.velocity == nil {
		s.velocity = make([]float64, len(params))
	}
	if len(s.velocity) != len(params) {
		return fmt.Errorf("optim: velocity length mismatch: %d vs %d", len(s.velocity), len(params))
	}
	for i, g := range grads {
		s.velocity[i] = s.momentum*s.velocity[i] + g
		params[i] -= lr * s.velocity[i]
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// When a scheduler is configured it overwrites this value on the next Step.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state for serialization.
//
// For SGD with momentum, this exports the velocity buffer. Without momentum,
// returns an empty map.
func (s *SGD) StateDict() map[string][]float64 {
	stateDict := make(map[string][]float64)
	if s.momentum == 0 || s.velocity == nil {
		return stateDict
	}

	velocity := make([]float64, len(s.velocity))
	copy(velocity, s.velocity)
	stateDict["velocity"] = velocity
	return stateDict
}

// LoadStateDict loads optimizer state from serialization.
//
// Restores the velocity buffer for SGD with momentum. If momentum is 0,
// ignores the provided state (no velocity needed).
func (s *SGD) LoadStateDict(stateDict map[string][]float64) error {
	if s.momentum == 0 {
		return nil
	}

	velocity, exists := stateDict["velocity"]
	if !exists {
		// No velocity yet - will be initialized on the first step.
		s.velocity = nil
		return nil
	}
	if s.velocity != nil && len(s.velocity) != len(velocity) {
		return fmt.Errorf("optim: velocity length mismatch: expected %d, got %d",
			len(s.velocity), len(velocity))
	}

	s.velocity = make([]float64, len(velocity))
	copy(s.velocity, velocity)
	return nil
}
