// Package chain owns the lock-step configuration of a finite-state
// Markov chain: the ordered state labels, the n×n transition matrix P,
// and the length-n initial distribution p0.
//
// 🚀 The shape invariant
//
//	The three structures always share the same dimension n ≥ 1 outside
//	of a single atomic resize. AddState appends a label, a self-loop
//	row, a zero column and a zero initial entry in one critical
//	section; RemoveState drops all four together and refuses to go
//	below one state. Configure replaces the whole triple atomically.
//
// ✨ Editing vs. validation
//
//	Cell edits (SetTransition, SetInitial) may transiently break
//	row-stochasticity — a user typing 0.6 into a row that already sums
//	to 1 is normal. Nothing is enforced at write time; Validate is the
//	explicit gate that sim.Session and analyze run before any derived
//	computation, so torn intermediate states can never propagate.
//
// All methods are safe for concurrent use: the Chain guards its state
// with a sync.RWMutex and every accessor returns deep copies, so the
// core never aliases slices owned by an embedding presentation layer.
package chain
