// Package chain sentinel errors and construction options.
package chain

import (
	"errors"
	"sync"

	"github.com/markovlab/stochain/vecmat"
)

// Sentinel errors for chain operations.
var (
	// ErrNoStates indicates an empty label set; a chain needs n ≥ 1.
	ErrNoStates = errors.New("chain: chain must have at least one state")

	// ErrDimensionMismatch indicates labels, matrix and initial vector
	// do not share dimension n with a square matrix. Embedders that
	// respect the atomic-resize contract never see this; treat it as a
	// programming error, not a user-facing condition.
	ErrDimensionMismatch = errors.New("chain: labels, matrix and initial vector dimensions diverge")

	// ErrNotStochastic indicates the transition matrix currently fails
	// the row-stochastic check. Recoverable: surface it and re-edit.
	ErrNotStochastic = errors.New("chain: transition matrix is not row-stochastic")

	// ErrStateIndex indicates a state index outside [0, n).
	ErrStateIndex = errors.New("chain: state index out of range")

	// ErrLastState indicates an attempt to remove the only remaining state.
	ErrLastState = errors.New("chain: cannot remove the last remaining state")

	// ErrBadTolerance indicates a non-positive row-sum tolerance option.
	ErrBadTolerance = errors.New("chain: row-sum tolerance must be positive")
)

// Chain is the atomic configuration of a finite-state Markov chain.
//
// labels[i] is the display name of state i; index i is the canonical
// state identifier everywhere else (labels need not be unique). trans
// is the n×n transition matrix, initial the length-n starting
// distribution. All three are guarded by mu and only ever resized
// together.
type Chain struct {
	mu        sync.RWMutex
	labels    []string
	trans     vecmat.Matrix
	initial   vecmat.Vector
	rowSumTol float64
}

// Option configures a Chain at construction time.
type Option func(*Chain)

// WithRowSumTol overrides the row-stochastic validation tolerance
// (default vecmat.DefaultRowSumTol). Panics on tol ≤ 0: a non-positive
// tolerance would reject every matrix, which is a configuration bug
// worth failing fast on.
func WithRowSumTol(tol float64) Option {
	return func(c *Chain) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		c.rowSumTol = tol
	}
}
