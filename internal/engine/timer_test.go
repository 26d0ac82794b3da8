package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTimerFiresAndForgets(t *testing.T) {
	ts := NewTimerSupervisor()
	id := uuid.New()

	fired := make(chan struct{})
	ts.Schedule(id, 5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	// The fired timer removes itself.
	deadline := time.Now().Add(time.Second)
	for ts.Pending() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("pending = %d after fire, want 0", ts.Pending())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestTimerCancel(t *testing.T) {
	ts := NewTimerSupervisor()
	id := uuid.New()

	fired := make(chan struct{}, 1)
	ts.Schedule(id, 20*time.Millisecond, func() { fired <- struct{}{} })
	ts.Cancel(id)

	if ts.Pending() != 0 {
		t.Fatalf("pending = %d after cancel, want 0", ts.Pending())
	}
	select {
	case <-fired:
		t.Fatal("cancelled timer fired")
	case <-time.After(60 * time.Millisecond):
	}

	// Cancelling again is a no-op.
	ts.Cancel(id)
}

func TestTimerRescheduleReplaces(t *testing.T) {
	ts := NewTimerSupervisor()
	id := uuid.New()

	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)
	ts.Schedule(id, 10*time.Millisecond, func() { first <- struct{}{} })
	ts.Schedule(id, 10*time.Millisecond, func() { second <- struct{}{} })

	select {
	case <-second:
	case <-time.After(time.Second):
		t.Fatal("replacement timer did not fire")
	}
	select {
	case <-first:
		t.Fatal("replaced timer fired anyway")
	case <-time.After(30 * time.Millisecond):
	}
}
