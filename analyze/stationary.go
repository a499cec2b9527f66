package analyze

import "github.com/markovlab/stochain/vecmat"

// Stationary approximates the stationary distribution π = πP of a
// row-stochastic matrix by power iteration.
//
// Algorithm:
//  1. Gate: p must be square and row-stochastic within RowSumTol.
//  2. Start from the uniform distribution π₀ = (1/n, …, 1/n).
//  3. Repeat π' = π·P; stop as soon as L1(π', π) < ConvergenceTol
//     (converged) or after MaxIter sweeps (last iterate returned,
//     Converged=false — NOT an error, inspect Result.Residual).
//  4. Residual = L1(π·P, π) is recomputed once after the loop.
//
// Guaranteed convergence holds only for irreducible aperiodic chains;
// the solver does not classify the chain, so a periodic matrix (e.g. a
// two-state swap) simply oscillates until the cap and reports a large
// residual.
//
// Errors:
//   - ErrEmptyMatrix / ErrNonSquare on malformed input.
//   - ErrNotStochastic when the validation gate fails.
//
// Time Complexity: O(I·n²), I ≤ MaxIter
// Memory: O(n)
func Stationary(p vecmat.Matrix, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(p) == 0 {
		return Result{}, ErrEmptyMatrix
	}
	if !vecmat.IsSquare(p) {
		return Result{}, ErrNonSquare
	}
	if !vecmat.IsRowStochastic(p, o.RowSumTol) {
		return Result{}, ErrNotStochastic
	}

	n := len(p)
	pi := make(vecmat.Vector, n)
	for i := range pi {
		pi[i] = 1 / float64(n)
	}

	res := Result{}
	for res.Iterations < o.MaxIter {
		next, err := vecmat.MulRowVec(pi, p)
		if err != nil {
			// Unreachable after the shape gate; surfaced for safety.
			return Result{}, err
		}
		res.Iterations++

		d, err := vecmat.L1Distance(next, pi)
		if err != nil {
			return Result{}, err
		}
		pi = next
		if d < o.ConvergenceTol {
			res.Converged = true
			break
		}
	}

	// One more multiply purely for the diagnostic residual.
	piP, err := vecmat.MulRowVec(pi, p)
	if err != nil {
		return Result{}, err
	}
	res.Residual, err = vecmat.L1Distance(piP, pi)
	if err != nil {
		return Result{}, err
	}
	res.Pi = pi

	return res, nil
}
