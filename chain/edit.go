package chain

import "github.com/markovlab/stochain/vecmat"

// SetTransition writes a single matrix cell P[i][j] = v. The write may
// transiently break row-stochasticity; that is expected during editing
// and caught later by Validate. Numeric well-formedness (finite,
// non-negative input) is the editing boundary's concern.
func (c *Chain) SetTransition(i, j int, v float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.trans) || j < 0 || j >= len(c.trans) {
		return ErrStateIndex
	}
	c.trans[i][j] = v

	return nil
}

// SetInitial writes a single entry of the initial distribution.
func (c *Chain) SetInitial(i int, v float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.initial) {
		return ErrStateIndex
	}
	c.initial[i] = v

	return nil
}

// SetLabel renames state i. Labels are free-form and need not be unique.
func (c *Chain) SetLabel(i int, label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.labels) {
		return ErrStateIndex
	}
	c.labels[i] = label

	return nil
}

// NormalizeRow rescales row i of the transition matrix to unit sum
// (an all-zero row stays all-zero). Normalization is an explicit
// operation, never applied implicitly by the engine.
func (c *Chain) NormalizeRow(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.trans) {
		return ErrStateIndex
	}
	c.trans[i] = vecmat.Normalize(c.trans[i])

	return nil
}

// NormalizeInitial rescales the initial distribution to unit sum.
func (c *Chain) NormalizeInitial() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initial = vecmat.Normalize(c.initial)
}
