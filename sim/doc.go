// Package sim holds the stateful side of the engine: the simulation
// Session and its cooperative run loop.
//
// 🚀 Session state machine
//
//	Ready (p = normalized p0, t = 0) ──Step──▶ Stepping (t > 0)
//	          ▲                                      │
//	          └──────────────── Reset ◀──────────────┘
//
//	Step validates the chain's transition matrix first and refuses to
//	mutate anything on chain.ErrNotStochastic; on success it replaces
//	the distribution with p·P and increments the counter. No
//	renormalization is applied after the multiply: a genuinely
//	row-stochastic matrix keeps p a distribution by construction, so
//	the design leans on the validator, not post-hoc correction.
//
// ✨ Run loop
//
//	Run performs Step once per tick in its own goroutine, separated by
//	a configurable delay, invoking the embedder's OnTick callback with
//	each new distribution. Cancellation is cooperative and immediate:
//	the flag is checked before every step and while waiting out the
//	delay, so a Cancel after tick k yields exactly k steps and no
//	further callbacks. Cancel is also the pause entry point for
//	embedder policy such as visibility-based pausing. Each step
//	re-validates the matrix, which makes interleaved cell edits safe
//	during a run.
//
// Sessions are independent owned values: create as many as needed, each
// carries a uuid for correlating callbacks in multi-session embedders.
package sim
