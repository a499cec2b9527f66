package sim

import "time"

// Run starts the cooperative run loop in its own goroutine: up to
// MaxSteps ticks, each performing one validated Step and invoking
// OnTick with the new distribution, separated by the configured delay.
//
// The loop stops when MaxSteps is reached, when Cancel is called, or
// when a step fails (invalid matrix mid-run); a step failure is
// recorded and readable via RunErr. The returned channel is closed once
// the loop has fully stopped — after it no further OnTick invocation
// can occur.
//
// Only one run may be active per session: ErrRunActive otherwise.
func (s *Session) Run(opts ...RunOption) (<-chan struct{}, error) {
	o := DefaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s.mu.Lock()
	if s.runCancel != nil {
		s.mu.Unlock()

		return nil, ErrRunActive
	}
	cancel := make(chan struct{})
	s.runCancel = cancel
	s.runErr = nil
	s.mu.Unlock()

	done := make(chan struct{})
	go s.runLoop(o, cancel, done)

	return done, nil
}

// Cancel requests cooperative cancellation of the active run, if any.
// It returns immediately; the run's done channel closes once the loop
// has observed the flag. Safe to call repeatedly and with no run
// active — this is the pause entry point embedder policy calls.
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.runCancel != nil {
		close(s.runCancel)
		s.runCancel = nil
	}
	s.mu.Unlock()
}

// RunErr reports the error that stopped the most recent run, or nil if
// it ran to completion or was cancelled. Cleared by the next Run.
func (s *Session) RunErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runErr
}

// runLoop is the run goroutine body. The cancellation flag is checked
// before every step and while waiting out the delay, so no step
// executes after Cancel and any pending wait is withdrawn.
func (s *Session) runLoop(o RunOptions, cancel chan struct{}, done chan struct{}) {
	defer func() {
		s.mu.Lock()
		if s.runCancel == cancel {
			s.runCancel = nil
		}
		s.mu.Unlock()
		close(done)
	}()

	for i := 0; i < o.MaxSteps; i++ {
		select {
		case <-cancel:
			return
		default:
		}

		dist, step, err := s.advance()
		if err != nil {
			s.mu.Lock()
			s.runErr = err
			s.mu.Unlock()

			return
		}
		if o.OnTick != nil {
			o.OnTick(step, dist)
		}

		if i == o.MaxSteps-1 {
			return
		}

		d := o.Delay
		if o.DelayFunc != nil {
			d = o.DelayFunc()
		}
		if d <= 0 {
			continue
		}
		timer := time.NewTimer(d)
		select {
		case <-cancel:
			timer.Stop()

			return
		case <-timer.C:
		}
	}
}
