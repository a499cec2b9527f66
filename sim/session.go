package sim

import (
	"sync"

	"github.com/google/uuid"
	"github.com/markovlab/stochain/chain"
	"github.com/markovlab/stochain/vecmat"
)

// Session simulates one Markov chain: it owns the current distribution
// p and the step counter t, and nothing else mutates them. Multiple
// sessions may share one *chain.Chain; each is an independent owned
// value identified by a uuid.
type Session struct {
	mu   sync.Mutex
	id   string
	ch   *chain.Chain
	dist vecmat.Vector
	step int

	runCancel chan struct{} // non-nil while a run is active
	runErr    error
}

// NewSession creates a session over ch in the Ready state: the current
// distribution is the chain's initial vector normalized to unit sum,
// the step counter is zero.
func NewSession(ch *chain.Chain) (*Session, error) {
	if ch == nil {
		return nil, ErrNilChain
	}
	s := &Session{
		id: uuid.NewString(),
		ch: ch,
	}
	s.Reset()

	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Chain returns the chain this session simulates.
func (s *Session) Chain() *chain.Chain { return s.ch }

// Reset re-enters the Ready state from the chain's current initial
// vector: p = Normalize(p0), t = 0. Always succeeds.
func (s *Session) Reset() {
	p0 := s.ch.Initial()
	s.mu.Lock()
	s.dist = vecmat.Normalize(p0)
	s.step = 0
	s.mu.Unlock()
}

// ResetTo re-enters Ready from an explicit starting vector instead of
// the chain's configured one: p = Normalize(p0), t = 0. The length of
// p0 must match the chain's state count.
func (s *Session) ResetTo(p0 vecmat.Vector) error {
	if len(p0) != s.ch.N() {
		return vecmat.ErrDimensionMismatch
	}
	s.mu.Lock()
	s.dist = vecmat.Normalize(p0)
	s.step = 0
	s.mu.Unlock()

	return nil
}

// Step advances the simulation one tick: p ← p·P, t ← t+1.
//
// The chain's matrix is validated first; on chain.ErrNotStochastic the
// session is left completely unchanged so the embedder can surface the
// condition and let the user repair the matrix. The returned vector is
// a copy.
//
// No renormalization follows the multiply — see the package doc.
//
// Time Complexity: O(n²)
func (s *Session) Step() (vecmat.Vector, error) {
	dist, _, err := s.advance()

	return dist, err
}

// advance is Step plus the step index just reached, for the run loop's
// OnTick callback. The matrix is validated and snapshotted under one
// chain lock (ValidatedTransitions) and the multiply uses that exact
// snapshot, so a concurrent cell edit lands either before this step's
// validation or after the whole step — a torn edit can never pass the
// gate and still reach the multiply.
func (s *Session) advance() (vecmat.Vector, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.ch.ValidatedTransitions()
	if err != nil {
		return nil, s.step, err
	}
	next, err := vecmat.MulRowVec(s.dist, p)
	if err != nil {
		// Chain resized since Reset without a matching Reset call; the
		// atomic-resize contract makes this a programming error.
		return nil, s.step, err
	}
	s.dist = next
	s.step++

	return vecmat.CloneVector(next), s.step, nil
}

// Distribution returns a copy of the current distribution p.
func (s *Session) Distribution() vecmat.Vector {
	s.mu.Lock()
	defer s.mu.Unlock()

	return vecmat.CloneVector(s.dist)
}

// StepCount returns the current step counter t.
func (s *Session) StepCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.step
}
