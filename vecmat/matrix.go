package vecmat

// Dims returns the number of rows and the length of the first row of m
// (0, 0 for an empty matrix). It does not verify rectangularity; use
// IsSquare for the structural check.
func Dims(m Matrix) (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}

	return len(m), len(m[0])
}

// IsSquare reports whether m has at least one row and every row has
// length equal to the row count.
//
// Time Complexity: O(n)
func IsSquare(m Matrix) bool {
	n := len(m)
	if n == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}

	return true
}

// Identity returns the n×n identity matrix. Every state of an identity
// chain is absorbing, which makes it a convenient fixture.
//
// Time Complexity: O(n²)
func Identity(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make(Vector, n)
		m[i][i] = 1
	}

	return m
}

// CloneMatrix returns a deep copy of m.
//
// Time Complexity: O(n²)
func CloneMatrix(m Matrix) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make(Vector, len(row))
		copy(out[i], row)
	}

	return out
}

// MulRowVec computes one propagation step r = p·m:
//
//	r[j] = Σ_k p[k]·m[k][j]
//
// This is left multiplication by a row vector, i.e. the distribution
// update p_{t+1} = p_t P of a Markov chain. Returns
// ErrDimensionMismatch unless len(p) == len(m) and every row of m has
// length len(p).
//
// Time Complexity: O(n²)
// Memory: O(n)
func MulRowVec(p Vector, m Matrix) (Vector, error) {
	n := len(p)
	if len(m) != n {
		return nil, ErrDimensionMismatch
	}
	for _, row := range m {
		if len(row) != n {
			return nil, ErrDimensionMismatch
		}
	}

	r := make(Vector, n)
	for k, pk := range p {
		if pk == 0 {
			continue
		}
		row := m[k]
		for j, w := range row {
			r[j] += pk * w
		}
	}

	return r, nil
}
