package vecmat

import "math"

// IsRowStochastic reports whether every row of m is a probability
// distribution: entries ≥ -EntryTol (tiny negatives are float noise
// from prior arithmetic, anything beyond that invalidates the matrix)
// and |rowSum - 1| ≤ tol.
//
// A tol ≤ 0 falls back to DefaultRowSumTol. The predicate is pure: no
// mutation, same answer for the same input. It is the sole gate run
// before any propagation or stationary solve.
//
// Time Complexity: O(n²)
func IsRowStochastic(m Matrix, tol float64) bool {
	if tol <= 0 {
		tol = DefaultRowSumTol
	}
	if len(m) == 0 {
		return false
	}
	for _, row := range m {
		sum := 0.0
		for _, x := range row {
			if x < -EntryTol {
				return false
			}
			sum += x
		}
		if math.Abs(sum-1) > tol {
			return false
		}
	}

	return true
}
