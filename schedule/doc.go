// Copyright 2026 Anneal ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package schedule provides learning rate schedules for training loops.
//
// # Overview
//
// This package contains:
//   - Factor: multiply the rate by a fixed factor every N updates
//   - MultiFactor: multiply the rate by a fixed factor at explicit milestones
//   - Cosine: anneal the rate along a half cosine wave
//   - Scheduler interface for custom schedules
//
// A Scheduler maps a monotonically non-decreasing update counter (roughly
// one optimizer step per mini-batch) to a learning rate. The counter may
// repeat the previous value and may jump forward by more than one; it must
// never decrease.
//
// # Basic Usage
//
//	import (
//	    "github.com/anneal-ml/anneal/optim"
//	    "github.com/anneal-ml/anneal/schedule"
//	)
//
//	func main() {
//	    sched, err := schedule.NewFactor(schedule.FactorConfig{
//	        Rate:     0.1,
//	        Interval: 1000,
//	        Factor:   0.5,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    optimizer := optim.NewSGD(optim.SGDConfig{
//	        LR:        0.1,
//	        Momentum:  0.9,
//	        Scheduler: sched,
//	    })
//
//	    // Training loop
//	    for step := range maxSteps {
//	        grads := computeGradients(params)
//	        optimizer.Step(params, grads)
//	    }
//	}
//
// # Resuming From a Checkpoint
//
// Schedulers rebuild their state when training resumes: the first Rate call
// with a non-zero counter replays every decay boundary between zero and that
// counter, producing the same rates as an uninterrupted run.
//
//	sched, _ := schedule.NewMultiFactor(schedule.MultiFactorConfig{
//	    Rate:       0.1,
//	    Milestones: []int{30_000, 60_000, 90_000},
//	    Factor:     0.1,
//	})
//
//	// Resume at update 75_000: the first two milestones replay silently.
//	lr, _ := sched.Rate(75_000) // 0.1 * 0.1 * 0.1 = 0.001
//
// # Slow Start
//
// The stepwise schedules accept a SlowStart threshold. While the counter is
// inside the window [0, SlowStart] the returned rate is the cached override
// Rate*Factor; past the window the base schedule takes over, untouched by
// the override. The threshold must be smaller than the first decay boundary.
package schedule
