package chain

import "github.com/markovlab/stochain/vecmat"

// AddState grows the chain by one state in a single critical section:
// the label is appended, every existing row gains a zero column, the
// new row is a probability-1 self-loop (a fresh state is absorbing
// until edited), and the initial vector gains a zero entry. The n×n /
// n / n shape invariant therefore holds before and after the call.
//
// Returns the index of the new state.
//
// Time Complexity: O(n)
func (c *Chain) AddState(label string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.labels)
	c.labels = append(c.labels, label)
	for i := range c.trans {
		c.trans[i] = append(c.trans[i], 0)
	}
	row := make(vecmat.Vector, n+1)
	row[n] = 1
	c.trans = append(c.trans, row)
	c.initial = append(c.initial, 0)

	return n
}

// RemoveState drops state i: its label, matrix row, matrix column and
// initial entry, atomically. Removal below n=1 is disallowed.
//
// The surviving rows are NOT renormalized — removing a state that had
// incoming probability leaves its sources summing below 1, which the
// next Validate call surfaces for the embedder to fix explicitly.
//
// Errors:
//   - ErrLastState  if n == 1.
//   - ErrStateIndex if i is outside [0, n).
//
// Time Complexity: O(n²)
func (c *Chain) RemoveState(i int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.labels)
	if n == 1 {
		return ErrLastState
	}
	if i < 0 || i >= n {
		return ErrStateIndex
	}

	c.labels = append(c.labels[:i], c.labels[i+1:]...)
	c.initial = append(c.initial[:i], c.initial[i+1:]...)
	c.trans = append(c.trans[:i], c.trans[i+1:]...)
	for r := range c.trans {
		c.trans[r] = append(c.trans[r][:i], c.trans[r][i+1:]...)
	}

	return nil
}
