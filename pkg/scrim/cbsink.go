package scrim

import "sync"

// CbSink injects callbacks into a running [App] from other goroutines.
// The app itself is not goroutine-safe; the sink is the one sanctioned
// way to reach it from outside the event loop. Callbacks run on the
// loop goroutine during [App.Step], in the order they were sent.
//
// The queue is unbounded, so [CbSink.Send] never blocks, even when the
// loop has already stopped.
type CbSink struct {
	mu    sync.Mutex
	queue []Callback
}

func newCbSink() *CbSink { return &CbSink{} }

// Send enqueues cb for the event loop. Safe to call from any goroutine.
func (s *CbSink) Send(cb Callback) {
	s.mu.Lock()
	s.queue = append(s.queue, cb)
	s.mu.Unlock()
}

// tryRecv pops the oldest pending callback, if any. Only the event
// loop calls this.
func (s *CbSink) tryRecv() (Callback, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil, false
	}
	cb := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return cb, true
}
