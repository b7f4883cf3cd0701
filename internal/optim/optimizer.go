// Package optim implements optimization algorithms for training loops.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers update flat float64 parameter slices in place. Each optimizer
// owns a per-run update counter and can consult a schedule.Scheduler once
// per step, so the learning rate follows the configured schedule without
// the training loop touching it.
//
// Example usage:
//
//	sched, _ := schedule.NewFactor(schedule.FactorConfig{
//	    Rate:     0.1,
//	    Interval: 1000,
//	    Factor:   0.5,
//	})
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:        0.1,
//	    Momentum:  0.9,
//	    Scheduler: sched,
//	})
//
//	for step := range steps {
//	    grads := computeGradients(params)
//	    if err := optimizer.Step(params, grads); err != nil {
//	        return err
//	    }
//	}
package optim

import "github.com/anneal-ml/anneal/internal/schedule"

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update parameters based on computed gradients to minimize the
// loss function during training.
type Optimizer interface {
	// Step applies one gradient update to params in place.
	//
	// params and grads must have the same length; grads holds the gradient
	// of the loss with respect to each parameter. Returns an error on a
	// length mismatch or when the configured scheduler rejects the update
	// counter.
	Step(params, grads []float64) error

	// GetLR returns the current learning rate.
	//
	// Useful for monitoring and learning rate scheduling.
	GetLR() float64

	// SetLR updates the learning rate.
	//
	// When a scheduler is configured it overwrites this value on the next
	// Step.
	SetLR(lr float64)
}

// schedulable carries the per-optimizer update counter and the optional
// scheduler consulted once per Step.
type schedulable struct {
	sched     schedule.Scheduler
	numUpdate int
}

// nextLR advances the update counter and returns the scheduled learning
// rate, or current when no scheduler is configured.
func (s *schedulable) nextLR(current float64) (float64, error) {
	s.numUpdate++
	if s.sched == nil {
		return current, nil
	}
	return s.sched.Rate(s.numUpdate)
}

// NumUpdate returns the number of updates applied so far, including any
// offset configured for a resumed run.
func (s *schedulable) NumUpdate() int { return s.numUpdate }
