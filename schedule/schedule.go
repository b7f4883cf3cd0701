// Copyright 2026 Anneal ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"github.com/anneal-ml/anneal/internal/schedule"
)

// Scheduler maps a monotonically non-decreasing update counter to a
// learning rate.
type Scheduler = schedule.Scheduler

// Phase identifies where a stepwise scheduler is in its lifecycle.
type Phase = schedule.Phase

// Scheduler lifecycle phases.
const (
	PhaseUninitialized = schedule.PhaseUninitialized
	PhaseReplaying     = schedule.PhaseReplaying
	PhaseSlowStart     = schedule.PhaseSlowStart
	PhaseSteadyDecay   = schedule.PhaseSteadyDecay
	PhaseFloored       = schedule.PhaseFloored
)

// Sentinel errors.
// Use errors.Is to check: errors.Is(err, schedule.ErrCounterRegressed)
var (
	ErrInvalidConfig    = schedule.ErrInvalidConfig
	ErrCounterRegressed = schedule.ErrCounterRegressed
)

// Factor (fixed-interval decay)

// Factor reduces the learning rate by a fixed factor every Interval updates.
type Factor = schedule.Factor

// FactorConfig contains configuration for the Factor scheduler.
type FactorConfig = schedule.FactorConfig

// NewFactor creates a new Factor scheduler.
//
// Example:
//
//	sched, err := schedule.NewFactor(schedule.FactorConfig{
//	    Rate:     0.1,
//	    Interval: 1000,
//	    Factor:   0.5,
//	    Floor:    1e-6,
//	})
func NewFactor(cfg FactorConfig) (*Factor, error) {
	return schedule.NewFactor(cfg)
}

// MultiFactor (milestone decay)

// MultiFactor reduces the learning rate by a fixed factor at explicit
// milestone update counts.
type MultiFactor = schedule.MultiFactor

// MultiFactorConfig contains configuration for the MultiFactor scheduler.
type MultiFactorConfig = schedule.MultiFactorConfig

// NewMultiFactor creates a new MultiFactor scheduler.
//
// Example:
//
//	sched, err := schedule.NewMultiFactor(schedule.MultiFactorConfig{
//	    Rate:       0.1,
//	    Milestones: []int{30_000, 60_000, 90_000},
//	    Factor:     0.1,
//	})
func NewMultiFactor(cfg MultiFactorConfig) (*MultiFactor, error) {
	return schedule.NewMultiFactor(cfg)
}

// Cosine (cosine annealing)

// Cosine anneals the learning rate along a half cosine wave from MaxRate
// down to MinRate over MaxUpdate updates.
type Cosine = schedule.Cosine

// CosineConfig contains configuration for the Cosine scheduler.
type CosineConfig = schedule.CosineConfig

// NewCosine creates a new Cosine scheduler.
//
// Example:
//
//	sched, err := schedule.NewCosine(schedule.CosineConfig{
//	    MaxRate:   0.01,
//	    MinRate:   1e-5,
//	    MaxUpdate: 100_000,
//	})
func NewCosine(cfg CosineConfig) (*Cosine, error) {
	return schedule.NewCosine(cfg)
}
