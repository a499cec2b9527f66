package analyze

import (
	"math"

	"github.com/markovlab/stochain/vecmat"
)

// Absorbing returns the indices (ascending) of all absorbing states of
// p: state i is absorbing iff row i equals the i-th standard basis
// vector within AbsorbingTol, i.e. P[i][i] ≈ 1 and P[i][j] ≈ 0 for
// j ≠ i.
//
// The test is exact (not iterative) and deliberately does not require
// the matrix to be row-stochastic overall — a half-edited matrix can
// still be scanned for absorbing rows. Only malformed shapes are
// rejected.
//
// Errors:
//   - ErrEmptyMatrix / ErrNonSquare on malformed input.
//
// Time Complexity: O(n²)
func Absorbing(p vecmat.Matrix, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(p) == 0 {
		return nil, ErrEmptyMatrix
	}
	if !vecmat.IsSquare(p) {
		return nil, ErrNonSquare
	}

	var out []int
	for i, row := range p {
		absorbing := true
		for j, v := range row {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(v-want) > o.AbsorbingTol {
				absorbing = false
				break
			}
		}
		if absorbing {
			out = append(out, i)
		}
	}

	return out, nil
}
