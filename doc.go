// Package stochain is a small engine for exploring discrete-time,
// finite-state Markov chains — define states, a row-stochastic
// transition matrix and an initial distribution, then watch the
// probability mass flow.
//
// 🚀 What is stochain?
//
//	An educational, embedder-friendly core that brings together:
//		• vecmat  — dense vector/matrix primitives and the row-stochastic gate
//		• chain   — the lock-step labels / matrix / initial-vector configuration
//		• sim     — simulation sessions: step, reset, cancellable run loop
//		• analyze — stationary distribution (power method) and absorbing states
//		• chart   — distribution-over-time line charts via gonum/plot
//
// ✨ Why stochain?
//
//   - Validation first – every propagation and solve is gated on the
//     row-stochastic check, so a half-edited matrix can never corrupt a run
//   - Owned values – chains and sessions are explicit values with deep-copy
//     boundaries; the core never aliases embedder state
//   - Honest numerics – no hidden renormalization, no silent convergence
//     claims; solvers report their residual and let you judge
//
// Quick taste — the classic weather chain:
//
//	c, _ := chain.New(
//	    []string{"Sunny", "Rainy"},
//	    vecmat.Matrix{{0.8, 0.2}, {0.4, 0.6}},
//	    vecmat.Vector{1, 0},
//	)
//	s, _ := sim.NewSession(c)
//	p, _ := s.Step() // [0.8 0.2]
//
// Rendering, controls and scheduling policy belong to the embedding
// presentation layer; see examples/ for two complete embeddings.
package stochain
