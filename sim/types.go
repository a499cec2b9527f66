// Package sim sentinel errors and run-loop options.
package sim

import (
	"errors"
	"time"

	"github.com/markovlab/stochain/vecmat"
)

// Sentinel errors for session operations.
var (
	// ErrNilChain indicates NewSession was given a nil chain.
	ErrNilChain = errors.New("sim: chain must not be nil")

	// ErrRunActive indicates Run was called while a previous run on the
	// same session has not finished or been cancelled.
	ErrRunActive = errors.New("sim: a run is already active on this session")

	// ErrBadMaxSteps indicates a non-positive MaxSteps option value.
	ErrBadMaxSteps = errors.New("sim: MaxSteps must be positive")

	// ErrBadDelay indicates a negative delay option value.
	ErrBadDelay = errors.New("sim: delay must not be negative")
)

// TickFunc is invoked once per successful run-loop step with the step
// index just reached (1-based: the first tick reports step 1) and a
// copy of the new distribution. It runs on the run goroutine; embedders
// that render from another goroutine hand the copy over themselves.
type TickFunc func(step int, dist vecmat.Vector)

// RunOptions configures a single Run invocation.
//
//	MaxSteps  – cap on the number of steps this run may perform.
//	Delay     – pause between consecutive steps (0 = free-running).
//	DelayFunc – optional live delay source, re-read before every wait;
//	            overrides Delay when set (speed sliders and the like).
//	OnTick    – per-step callback, may be nil.
type RunOptions struct {
	MaxSteps  int
	Delay     time.Duration
	DelayFunc func() time.Duration
	OnTick    TickFunc
}

// DefaultRunOptions returns MaxSteps=100, no delay, no callback.
func DefaultRunOptions() RunOptions {
	return RunOptions{MaxSteps: 100}
}

// RunOption is a functional option applied on top of DefaultRunOptions.
type RunOption func(*RunOptions)

// WithMaxSteps caps the run length. Panics on n ≤ 0.
func WithMaxSteps(n int) RunOption {
	return func(o *RunOptions) {
		if n <= 0 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
	}
}

// WithDelay sets a fixed pause between steps. Panics on d < 0.
func WithDelay(d time.Duration) RunOption {
	return func(o *RunOptions) {
		if d < 0 {
			panic(ErrBadDelay.Error())
		}
		o.Delay = d
	}
}

// WithDelayFunc installs a live delay source consulted before every
// wait. Embedders expose their speed control through this.
func WithDelayFunc(f func() time.Duration) RunOption {
	return func(o *RunOptions) { o.DelayFunc = f }
}

// WithOnTick installs the per-step callback.
func WithOnTick(fn TickFunc) RunOption {
	return func(o *RunOptions) { o.OnTick = fn }
}
