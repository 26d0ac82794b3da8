package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TimerSupervisor runs one scheduled task per timed session, keyed by
// session ID so a cancel never touches another session's timer.
type TimerSupervisor struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

// NewTimerSupervisor creates an empty supervisor.
func NewTimerSupervisor() *TimerSupervisor {
	return &TimerSupervisor{timers: make(map[uuid.UUID]*time.Timer)}
}

// Schedule registers fire to run after d. A previous timer for the same
// session is stopped first.
func (ts *TimerSupervisor) Schedule(id uuid.UUID, d time.Duration, fire func()) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if t, ok := ts.timers[id]; ok {
		t.Stop()
	}
	ts.timers[id] = time.AfterFunc(d, func() {
		ts.mu.Lock()
		delete(ts.timers, id)
		ts.mu.Unlock()
		fire()
	})
}

// Cancel stops the pending timer for a session, if any. Cancelling an
// unknown or already-fired timer is a no-op.
func (ts *TimerSupervisor) Cancel(id uuid.UUID) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if t, ok := ts.timers[id]; ok {
		t.Stop()
		delete(ts.timers, id)
	}
}

// Pending returns the number of scheduled timers.
func (ts *TimerSupervisor) Pending() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.timers)
}
