// Package analyze option types, defaults, and sentinel errors.
package analyze

import (
	"errors"

	"github.com/markovlab/stochain/vecmat"
)

// Sentinel errors for analyses.
var (
	// ErrNotStochastic indicates the matrix failed the row-stochastic
	// gate; Stationary refuses to iterate on such input.
	ErrNotStochastic = errors.New("analyze: transition matrix is not row-stochastic")

	// ErrEmptyMatrix indicates a matrix with no rows.
	ErrEmptyMatrix = errors.New("analyze: matrix must have at least one row")

	// ErrNonSquare indicates a non-square matrix.
	ErrNonSquare = errors.New("analyze: matrix must be square")

	// ErrBadTolerance indicates a non-positive tolerance option value.
	ErrBadTolerance = errors.New("analyze: tolerance must be positive")

	// ErrBadMaxIter indicates a non-positive iteration cap.
	ErrBadMaxIter = errors.New("analyze: MaxIter must be positive")
)

// Options bundles the tolerance configuration an embedder may supply.
//
//	ConvergenceTol – solver stopping threshold on the L1 step change.
//	MaxIter        – power-method iteration cap; reaching it is not an error.
//	AbsorbingTol   – per-entry tolerance of the identity-row test.
//	RowSumTol      – row-stochastic validation tolerance.
type Options struct {
	ConvergenceTol float64
	MaxIter        int
	AbsorbingTol   float64
	RowSumTol      float64
}

// DefaultOptions returns the standard tolerances:
// ConvergenceTol 1e-10, MaxIter 20000, AbsorbingTol 1e-12,
// RowSumTol vecmat.DefaultRowSumTol.
func DefaultOptions() Options {
	return Options{
		ConvergenceTol: 1e-10,
		MaxIter:        20000,
		AbsorbingTol:   1e-12,
		RowSumTol:      vecmat.DefaultRowSumTol,
	}
}

// Option is a functional option applied on top of DefaultOptions.
type Option func(*Options)

// WithConvergenceTol sets the solver stopping threshold.
// Panics on tol ≤ 0.
func WithConvergenceTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.ConvergenceTol = tol
	}
}

// WithMaxIter caps the power-method iteration count. Panics on n ≤ 0.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIter.Error())
		}
		o.MaxIter = n
	}
}

// WithAbsorbingTol sets the identity-row comparison tolerance.
// Panics on tol ≤ 0.
func WithAbsorbingTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.AbsorbingTol = tol
	}
}

// WithRowSumTol sets the row-stochastic validation tolerance.
// Panics on tol ≤ 0.
func WithRowSumTol(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic(ErrBadTolerance.Error())
		}
		o.RowSumTol = tol
	}
}

// Result is the outcome of a Stationary call.
//
//	Pi         – the final iterate (non-negative, ≈ unit sum).
//	Residual   – L1(Pi·P, Pi), recomputed once after the loop for display.
//	Iterations – number of multiply steps actually performed.
//	Converged  – whether the stopping threshold was met before MaxIter.
type Result struct {
	Pi         vecmat.Vector
	Residual   float64
	Iterations int
	Converged  bool
}
