// ABOUTME: Scheduler coalesces layout requests (resize, child changes) into one pending pass
// ABOUTME: Lock-free pending flag; the first request of a frame notifies the host

package tui

import "go.uber.org/atomic"

// Scheduler coalesces repeated layout requests. Any number of Request calls
// between two Take calls result in a single pass.
type Scheduler struct {
	pending *atomic.Bool
	notify  func()
}

// NewScheduler creates a Scheduler. notify, if non-nil, is called once each
// time the scheduler goes from idle to pending.
func NewScheduler(notify func()) *Scheduler {
	return &Scheduler{
		pending: atomic.NewBool(false),
		notify:  notify,
	}
}

// SetNotify replaces the idle-to-pending callback.
func (s *Scheduler) SetNotify(fn func()) {
	s.notify = fn
}

// Request marks a pass as needed. Returns true when this call scheduled the
// pass, false when one was already pending (coalesced).
func (s *Scheduler) Request() bool {
	if !s.pending.CompareAndSwap(false, true) {
		return false
	}
	if s.notify != nil {
		s.notify()
	}
	return true
}

// Take clears the pending flag and reports whether a pass was pending.
func (s *Scheduler) Take() bool {
	return s.pending.CompareAndSwap(true, false)
}

// Pending reports whether a pass is scheduled.
func (s *Scheduler) Pending() bool {
	return s.pending.Load()
}
