// Package vecmat provides the small dense vector/matrix kernel used by
// the stochain Markov chain engine.
//
// 🚀 What lives here?
//
//	Probability vectors and row-stochastic transition matrices are tiny
//	(state counts are edited by a human), so everything is a plain
//	[]float64 / [][]float64 with explicit loops:
//	  • Normalize  — rescale a vector to unit sum (zero-sum safe)
//	  • MulRowVec  — one propagation step r = p·P
//	  • L1Distance — convergence metric for fixed-point iteration
//	  • IsRowStochastic — the validation gate for every derived computation
//
// ✨ Design notes:
//   - Normalize never divides by zero: a vector with sum ≤ 0 maps to the
//     all-zero vector of the same length ("no valid distribution").
//   - MulRowVec and L1Distance report ErrDimensionMismatch instead of
//     panicking; callers that keep shapes in lock-step can ignore it.
//   - IsRowStochastic is a pure predicate; it tolerates tiny negative
//     entries (≥ -EntryTol) left behind by prior float arithmetic.
//
// Complexity: all operations are O(n) or O(n²) over the state count n.
//
// See chain for the lock-step configuration and analyze for the solvers
// built on these primitives.
package vecmat
