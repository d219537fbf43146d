// Package schedule provides delayed one-shot actions keyed by the target
// entity id. The id is captured at schedule time, so a fire always
// resolves against the entity it was scheduled for, never against
// whatever the UI happens to have selected when the timer goes off.
package schedule

import (
	"sync"
	"time"
)

type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func New() *Scheduler {
	return &Scheduler{timers: make(map[string]*time.Timer)}
}

// After runs fn(id) once the delay elapses. Scheduling again for the same
// id replaces the pending action. fn must tolerate the entity having
// disappeared in the meantime (no-op, not panic).
func (s *Scheduler) After(id string, delay time.Duration, fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
	}
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
		fn(id)
	})
}

// Cancel stops a pending action. Cancelling an unknown id is a no-op.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending reports whether an action is still queued for the id.
func (s *Scheduler) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}
