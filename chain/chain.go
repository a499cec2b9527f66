package chain

import "github.com/markovlab/stochain/vecmat"

// New constructs a Chain from labels, transition matrix P and initial
// distribution p0, deep-copying all three so the caller keeps no alias
// into the chain's state.
//
// Shape requirements: len(labels) == len(p0) == n ≥ 1 and P square n×n.
// Row-stochasticity is NOT required here — matrices are edited
// incrementally and validated on use (see Validate).
//
// Errors:
//   - ErrNoStates          if n == 0.
//   - ErrDimensionMismatch if the triple is not in lock-step.
//
// Time Complexity: O(n²) for the matrix copy.
func New(labels []string, p vecmat.Matrix, p0 vecmat.Vector, opts ...Option) (*Chain, error) {
	c := &Chain{rowSumTol: vecmat.DefaultRowSumTol}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.setLocked(labels, p, p0); err != nil {
		return nil, err
	}

	return c, nil
}

// Configure atomically replaces the whole labels/matrix/vector triple.
// The embedder calls this after any structural edit it performed on its
// own copies (preset load, bulk paste). On error the previous
// configuration is untouched.
//
// Time Complexity: O(n²)
func (c *Chain) Configure(labels []string, p vecmat.Matrix, p0 vecmat.Vector) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.setLocked(labels, p, p0)
}

// setLocked validates shapes and installs deep copies. Callers hold the
// write lock (or own the value exclusively, as in New).
func (c *Chain) setLocked(labels []string, p vecmat.Matrix, p0 vecmat.Vector) error {
	n := len(labels)
	if n == 0 {
		return ErrNoStates
	}
	if len(p0) != n || len(p) != n {
		return ErrDimensionMismatch
	}
	for _, row := range p {
		if len(row) != n {
			return ErrDimensionMismatch
		}
	}

	c.labels = append([]string(nil), labels...)
	c.trans = vecmat.CloneMatrix(p)
	c.initial = vecmat.CloneVector(p0)

	return nil
}

// N returns the number of states.
func (c *Chain) N() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.labels)
}

// Labels returns a copy of the ordered state labels.
func (c *Chain) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]string(nil), c.labels...)
}

// Label returns the label of state i.
func (c *Chain) Label(i int) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.labels) {
		return "", ErrStateIndex
	}

	return c.labels[i], nil
}

// Transitions returns a deep copy of the transition matrix.
//
// Time Complexity: O(n²)
func (c *Chain) Transitions() vecmat.Matrix {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return vecmat.CloneMatrix(c.trans)
}

// Transition returns the single entry P[i][j].
func (c *Chain) Transition(i, j int) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i < 0 || i >= len(c.trans) || j < 0 || j >= len(c.trans) {
		return 0, ErrStateIndex
	}

	return c.trans[i][j], nil
}

// Initial returns a copy of the initial distribution p0.
func (c *Chain) Initial() vecmat.Vector {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return vecmat.CloneVector(c.initial)
}

// ValidatedTransitions returns a deep copy of the transition matrix,
// but only if it currently passes the row-stochastic check. The gate
// and the snapshot happen under a single lock, so a concurrent cell
// edit lands either before the validation or after the copy — never in
// between. sim.Session steps through this accessor.
//
// Errors:
//   - ErrNotStochastic if the matrix fails the check.
//
// Time Complexity: O(n²)
func (c *Chain) ValidatedTransitions() (vecmat.Matrix, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !vecmat.IsRowStochastic(c.trans, c.rowSumTol) {
		return nil, ErrNotStochastic
	}

	return vecmat.CloneMatrix(c.trans), nil
}

// RowSumTol returns the configured validation tolerance.
func (c *Chain) RowSumTol() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.rowSumTol
}

// Validate reports whether the transition matrix is currently
// row-stochastic within the configured tolerance. Returns nil on
// success, ErrNotStochastic otherwise. This is the gate every derived
// computation (sim.Session.Step, analyze.Stationary) runs first.
//
// Time Complexity: O(n²)
func (c *Chain) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !vecmat.IsRowStochastic(c.trans, c.rowSumTol) {
		return ErrNotStochastic
	}

	return nil
}

// IsValid is the predicate form of Validate.
func (c *Chain) IsValid() bool { return c.Validate() == nil }
