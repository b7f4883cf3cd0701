package optim

import (
	"fmt"
	"math"

	"github.com/anneal-ml/anneal/internal/schedule"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	m     []float64 // First moment estimates
	v     []float64 // Second moment estimates
	schedulable
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)

	// Scheduler, when set, supplies the learning rate once per Step,
	// keyed by the optimizer's update counter.
	Scheduler schedule.Scheduler

	// BeginUpdate offsets the update counter for runs resumed from a
	// checkpoint. It also seeds the bias-correction timestep so a resumed
	// run applies the same corrections as an uninterrupted one.
	BeginUpdate int
}

// NewAdam creates a new Adam optimizer.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam(config AdamConfig) *Adam {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		schedulable: schedulable{
			sched:     config.Scheduler,
			numUpdate: config.BeginUpdate,
		},
	}
}

// Step performs a single optimization step, updating params in place.
//
// Moment buffers are allocated lazily on the first step. The update counter
// doubles as the bias-correction timestep.
func (a *Adam) Step(params, grads []float64) error {
	if len(params) != len(grads) {
		return fmt.Errorf("optim: params/grads length mismatch: %d vs %d", len(params), len(grads))
	}

	lr, err := a.nextLR(a.lr)
	if err != nil {
		return err
	}
	a.lr = lr

	if a.m == nil {
		a.m = make([]float64, len(params))
		a.v = make([]float64, len(params))
	}
	if len(a.m) != len(params) {
		return fmt.Errorf("optim: moment length mismatch: %d vs %d", len(a.m), len(params))
	}

	t := float64(a.numUpdate)
	mCorr := 1 - math.Pow(a.beta1, t)
	vCorr := 1 - math.Pow(a.beta2, t)

	for i, g := range grads {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / mCorr
		vHat := a.v[i] / vCorr

		params[i] -= lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
	return nil
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
//
// When a scheduler is configured it overwrites this value on the next Step.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// StateDict returns the optimizer state for serialization.
//
// Exports the first and second moment buffers. Returns an empty map before
// the first step.
func (a *Adam) StateDict() map[string][]float64 {
	stateDict := make(map[string][]float64)
	if a.m == nil {
		return stateDict
	}

	m := make([]float64, len(a.m))
	copy(m, a.m)
	v := make([]float64, len(a.v))
	copy(v, a.v)
	stateDict["m"] = m
	stateDict["v"] = v
	return stateDict
}

// LoadStateDict loads optimizer state from serialization.
//
// Restores the moment buffers. Returns an error if the buffer lengths do
// not agree with each other.
func (a *Adam) LoadStateDict(stateDict map[string][]float64) error {
	m, mOK := stateDict["m"]
	v, vOK := stateDict["v"]
	if !mOK && !vOK {
		// No moments yet - will be initialized on the first step.
		a.m, a.v = nil, nil
		return nil
	}
	if !mOK || !vOK || len(m) != len(v) {
		return fmt.Errorf("optim: moment buffers m/v must be present and the same length")
	}

	a.m = make([]float64, len(m))
	copy(a.m, m)
	a.v = make([]float64, len(v))
	copy(a.v, v)
	return nil
}
