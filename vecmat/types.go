// Package vecmat defines the core Vector and Matrix types, numeric
// tolerances, and sentinel errors shared by the stochain packages.
package vecmat

import "errors"

// Vector is a dense row vector of non-negative reals, usually a
// probability distribution over states (but unit sum is not assumed
// here; see Normalize).
type Vector []float64

// Matrix is a dense row-major matrix. A transition matrix is square and
// row-stochastic; squareness is the caller's structural invariant and
// checked only where it matters (MulRowVec, IsSquare).
type Matrix [][]float64

// Numeric tolerances shared across the engine. The validator tolerance
// is deliberately looser than the noise floor: row sums accumulate n
// rounding errors, individual entries at most one.
const (
	// DefaultRowSumTol bounds |rowSum - 1| for a row to count as stochastic.
	DefaultRowSumTol = 1e-9

	// EntryTol is the float-noise floor: entries in (-EntryTol, 0) are
	// treated as zero rather than as genuinely negative probabilities.
	EntryTol = 1e-12
)

// Sentinel errors for vecmat operations.
var (
	// ErrDimensionMismatch indicates vector/matrix lengths diverge.
	// Shapes are kept in lock-step by chain.Chain, so hitting this is a
	// programming error in the caller, not a user-facing condition.
	ErrDimensionMismatch = errors.New("vecmat: vector/matrix dimensions diverge")

	// ErrEmptyMatrix indicates a matrix with no rows was supplied.
	ErrEmptyMatrix = errors.New("vecmat: matrix must have at least one row")

	// ErrNonSquare indicates a matrix whose rows do not all have length
	// equal to the row count.
	ErrNonSquare = errors.New("vecmat: matrix must be square")
)
