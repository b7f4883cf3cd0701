// Copyright 2026 Anneal ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint persists training state between runs.
//
// A checkpoint captures the update counter, the parameter slice, the
// optimizer's state dict and the scheduler configuration, as JSON guarded
// by a SHA-256 checksum.
//
// # Basic Usage
//
//	// Save at a step boundary
//	err := checkpoint.Save("run.ckpt", checkpoint.State{
//	    Step:      step,
//	    Params:    params,
//	    Optimizer: optimizer.StateDict(),
//	})
//
//	// Resume
//	st, err := checkpoint.Load("run.ckpt")
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:          0.01,
//	    Scheduler:   sched,
//	    BeginUpdate: st.Step,
//	})
//	optimizer.LoadStateDict(st.Optimizer)
package checkpoint

import (
	"github.com/anneal-ml/anneal/internal/checkpoint"
)

// State is the training state captured by a checkpoint.
type State = checkpoint.State

// ErrChecksumMismatch is returned by Load when the payload does not match
// its recorded checksum.
var ErrChecksumMismatch = checkpoint.ErrChecksumMismatch

// Save writes the state to path, replacing any existing file.
func Save(path string, st State) error {
	return checkpoint.Save(path, st)
}

// Load reads the state from path, verifying the payload checksum.
func Load(path string) (State, error) {
	return checkpoint.Load(path)
}
