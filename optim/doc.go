// Copyright 2026 Anneal ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training loops.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers update flat float64 parameter slices in place and integrate
// with the schedule package: configure a Scheduler and the optimizer fetches
// the learning rate once per step, keyed by its own update counter.
//
// # Basic Usage
//
//	import (
//	    "github.com/anneal-ml/anneal/optim"
//	    "github.com/anneal-ml/anneal/schedule"
//	)
//
//	func main() {
//	    sched, _ := schedule.NewFactor(schedule.FactorConfig{
//	        Rate:     0.01,
//	        Interval: 1000,
//	        Factor:   0.5,
//	    })
//
//	    // Create optimizer
//	    optimizer := optim.NewSGD(optim.SGDConfig{
//	        LR:        0.01,
//	        Momentum:  0.9,
//	        Scheduler: sched,
//	    })
//
//	    // Training loop
//	    for step := range maxSteps {
//	        grads := computeGradients(params)
//	        if err := optimizer.Step(params, grads); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Resuming Training
//
// Set BeginUpdate to the step count of the checkpoint. The configured
// scheduler replays the skipped updates on the first Step, so the resumed
// run sees the same learning rates as an uninterrupted one:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:          0.01,
//	    Momentum:    0.9,
//	    Scheduler:   sched,
//	    BeginUpdate: checkpointStep,
//	})
//	optimizer.LoadStateDict(savedState)
package optim
