package engine

import (
	"testing"

	"github.com/google/uuid"
)

func TestStorePutGetRemove(t *testing.T) {
	st := NewSessionStore()

	if st.Get(1) != nil {
		t.Fatal("empty store returned a session")
	}

	s := &TestSession{ID: uuid.New(), TelegramID: 1, TestID: 10}
	st.Put(s)

	if got := st.Get(1); got != s {
		t.Fatal("Get did not return the stored session")
	}
	if st.Len() != 1 {
		t.Fatalf("Len = %d, want 1", st.Len())
	}

	if st.Remove(1, s.ID) != true {
		t.Fatal("Remove with matching ID reported false")
	}
	if st.Get(1) != nil {
		t.Fatal("session survived Remove")
	}
}

func TestStoreRemoveIgnoresStaleID(t *testing.T) {
	st := NewSessionStore()

	old := &TestSession{ID: uuid.New(), TelegramID: 1, TestID: 10}
	st.Put(old)

	// The user started a new test; the old session's finalize must not
	// evict the replacement.
	replacement := &TestSession{ID: uuid.New(), TelegramID: 1, TestID: 11}
	st.Put(replacement)

	if st.Remove(1, old.ID) {
		t.Fatal("Remove with a stale ID evicted the live session")
	}
	if got := st.Get(1); got != replacement {
		t.Fatal("replacement session is gone")
	}
}
