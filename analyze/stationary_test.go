package analyze_test

import (
	"testing"

	"github.com/markovlab/stochain/analyze"
	"github.com/markovlab/stochain/vecmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStationary_WeatherFixedPoint checks the canonical two-state chain
// against its exact solution π = [2/3, 1/3] of π=πP, Σπ=1.
func TestStationary_WeatherFixedPoint(t *testing.T) {
	P := vecmat.Matrix{{0.8, 0.2}, {0.4, 0.6}}

	res, err := analyze.Stationary(P)
	require.NoError(t, err)

	assert.True(t, res.Converged, "weather chain is irreducible and aperiodic")
	assert.InDelta(t, 2.0/3.0, res.Pi[0], 1e-6)
	assert.InDelta(t, 1.0/3.0, res.Pi[1], 1e-6)
	assert.Less(t, res.Residual, 1e-6, "residual must certify the fixed point")
	assert.InDelta(t, 1.0, vecmat.Sum(res.Pi), 1e-9, "π stays a distribution")
}

// TestStationary_InvalidMatrix: a row summing to 1.1 must be rejected
// before any iteration runs.
func TestStationary_InvalidMatrix(t *testing.T) {
	P := vecmat.Matrix{{0.5, 0.6}, {0.4, 0.6}}

	_, err := analyze.Stationary(P)
	assert.ErrorIs(t, err, analyze.ErrNotStochastic)
}

// TestStationary_ShapeErrors covers the malformed-input gates.
func TestStationary_ShapeErrors(t *testing.T) {
	_, err := analyze.Stationary(vecmat.Matrix{})
	assert.ErrorIs(t, err, analyze.ErrEmptyMatrix)

	_, err = analyze.Stationary(vecmat.Matrix{{0.5, 0.5}})
	assert.ErrorIs(t, err, analyze.ErrNonSquare)
}

// TestStationary_NonConvergenceIsNotAnError: hitting MaxIter returns the
// last iterate with diagnostics instead of failing.
func TestStationary_NonConvergenceIsNotAnError(t *testing.T) {
	P := vecmat.Matrix{{0.8, 0.2}, {0.4, 0.6}}

	res, err := analyze.Stationary(P, analyze.WithMaxIter(2))
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Greater(t, res.Residual, 0.0, "caller thresholds the residual itself")
	assert.Len(t, res.Pi, 2)
}

// TestStationary_SingleState: the 1×1 chain [[1]] is its own fixed point.
func TestStationary_SingleState(t *testing.T) {
	res, err := analyze.Stationary(vecmat.Matrix{{1}})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, vecmat.Vector{1}, res.Pi)
	assert.Equal(t, 0.0, res.Residual)
}

// TestStationary_AbsorbingChain: with two absorbing states the chain is
// reducible; the solver still terminates and mass ends up absorbed.
func TestStationary_AbsorbingChain(t *testing.T) {
	P := vecmat.Matrix{
		{0.85, 0.10, 0.05},
		{0, 1, 0},
		{0, 0, 1},
	}

	res, err := analyze.Stationary(P)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Pi[0], 1e-6, "transient state drains to zero")
	assert.InDelta(t, 1.0, vecmat.Sum(res.Pi), 1e-9)
}

// TestOptionPanics: nonsense tolerance configuration fails fast when
// the options are applied (the constructors only build closures).
func TestOptionPanics(t *testing.T) {
	P := vecmat.Matrix{{0.8, 0.2}, {0.4, 0.6}}

	assert.Panics(t, func() { _, _ = analyze.Stationary(P, analyze.WithConvergenceTol(0)) })
	assert.Panics(t, func() { _, _ = analyze.Stationary(P, analyze.WithMaxIter(0)) })
	assert.Panics(t, func() { _, _ = analyze.Absorbing(P, analyze.WithAbsorbingTol(-1)) })
	assert.Panics(t, func() { _, _ = analyze.Stationary(P, analyze.WithRowSumTol(0)) })
}
