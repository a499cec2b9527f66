// Package analyze provides the read-only analyses of a transition
// matrix: stationary-distribution approximation and absorbing-state
// detection. Both operate on the matrix alone, independent of any
// simulation session or its progress.
//
// 🚀 Stationary distribution (power method)
//
//	Stationary iterates π' = π·P from the uniform distribution until
//	the L1 change drops below ConvergenceTol or MaxIter is reached.
//	Convergence is only guaranteed for irreducible, aperiodic chains
//	and the solver does not verify those properties: a large Residual
//	in the Result is the analyst's evidence of periodicity or
//	reducibility, not an error. Non-convergence therefore returns the
//	last iterate with Converged=false rather than failing.
//
// ✨ Absorbing states
//
//	Absorbing is exact, not iterative: state i is absorbing iff row i
//	equals the i-th standard basis vector within AbsorbingTol. Once
//	entered, such a state is never left.
//
// Both entry points accept the same functional options; tolerances
// default to the values in DefaultOptions.
//
// Complexity: one power-method sweep is O(n²); Absorbing is O(n²).
package analyze
