// Package checkpoint persists training state between runs.
//
// A checkpoint captures everything needed to resume a training loop: the
// update counter, the flat parameter slice, the optimizer's state dict and
// the scheduler configuration. The payload is JSON wrapped in an envelope
// carrying its SHA-256 checksum, verified on load.
//
// Example usage:
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
//	    LR:          lr,
//	    Scheduler:   sched,
//	    BeginUpdate: st.Step,
//	})
package checkpoint

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Common errors.
var (
	ErrChecksumMismatch = errors.New("checkpoint: checksum mismatch, file may be corrupted")
)

// State is the training state captured by a checkpoint.
type State struct {
	// Step is the update counter at save time. Feed it to the optimizer's
	// BeginUpdate so the scheduler replays the completed updates.
	Step int `json:"step"`

	// Params is the flat parameter slice.
	Params []float64 `json:"params"`

	// Optimizer holds the optimizer's state dict (momentum or moment
	// buffers). Empty for stateless optimizers.
	Optimizer map[string][]float64 `json:"optimizer,omitempty"`

	// Scheduler holds the scheduler's serialized configuration, as
	// produced by its MarshalJSON.
	Scheduler json.RawMessage `json:"scheduler,omitempty"`
}

// envelope is the on-disk form: the state payload plus its checksum.
type envelope struct {
	Checksum string          `json:"checksum"`
	State    json.RawMessage `json:"state"`
}

// Save writes the state to path, replacing any existing file.
func Save(path string, st State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("checkpoint: failed to encode state: %w", err)
	}

	env := envelope{
		Checksum: checksum(payload),
		State:    payload,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("checkpoint: failed to encode envelope: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("checkpoint: failed to write %s: %w", path, err)
	}
	return nil
}

// Load reads the state from path, verifying the payload checksum.
func Load(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("checkpoint: failed to read %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return State{}, fmt.Errorf("checkpoint: failed to decode envelope: %w", err)
	}
	if got := checksum(env.State); got != env.Checksum {
		return State{}, fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, env.Checksum, got)
	}

	var st State
	if err := json.Unmarshal(env.State, &st); err != nil {
		return State{}, fmt.Errorf("checkpoint: failed to decode state: %w", err)
	}
	return st, nil
}

// checksum hashes the compact form of the payload, so re-indenting the file
// does not invalidate it.
func checksum(payload []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err == nil {
		payload = buf.Bytes()
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
