package vecmat

import "math"

// Sum returns the sum of all entries of v.
//
// Time Complexity: O(n)
func Sum(v Vector) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s
}

// Normalize returns a copy of v rescaled to unit sum.
//
// If the sum of v is ≤ 0 there is no valid distribution to recover, so
// Normalize returns an all-zero vector of the same length instead of
// dividing by zero. The input is never mutated.
//
// Time Complexity: O(n)
func Normalize(v Vector) Vector {
	out := make(Vector, len(v))
	s := Sum(v)
	if s <= 0 {
		return out
	}
	for i, x := range v {
		out[i] = x / s
	}

	return out
}

// L1Distance returns Σ|a_i - b_i|, the convergence metric used by the
// stationary-distribution solver. Returns ErrDimensionMismatch if the
// vectors differ in length.
//
// Time Complexity: O(n)
func L1Distance(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	d := 0.0
	for i := range a {
		d += math.Abs(a[i] - b[i])
	}

	return d, nil
}

// CloneVector returns a deep copy of v.
func CloneVector(v Vector) Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}
