package fsm

import "testing"

func TestStoreLifecycle(t *testing.T) {
	st := NewStore()

	if st.State(1) != StateIdle {
		t.Fatal("fresh chat is not idle")
	}

	type draft struct{ Name string }

	st.Start(1, StateRegName, &draft{})
	if st.State(1) != StateRegName {
		t.Fatalf("state = %q, want %q", st.State(1), StateRegName)
	}

	d, ok := st.Payload(1).(*draft)
	if !ok {
		t.Fatalf("payload = %T, want *draft", st.Payload(1))
	}
	d.Name = "Alice"

	// Set keeps the payload.
	st.Set(1, StateRegAge)
	if got := st.Payload(1).(*draft); got.Name != "Alice" {
		t.Fatal("Set dropped the payload")
	}

	// Start replaces it.
	st.Start(1, StateRegName, &draft{})
	if got := st.Payload(1).(*draft); got.Name != "" {
		t.Fatal("Start kept the stale payload")
	}

	st.Clear(1)
	if st.State(1) != StateIdle || st.Payload(1) != nil {
		t.Fatal("Clear left residue")
	}
}

func TestSetOnUnknownChatCreatesConversation(t *testing.T) {
	st := NewStore()
	st.Set(42, StateLoginPhone)
	if st.State(42) != StateLoginPhone {
		t.Fatal("Set on unknown chat was lost")
	}
}

func TestChatsAreIndependent(t *testing.T) {
	st := NewStore()
	st.Set(1, StateRegName)
	st.Set(2, StateLoginPhone)

	st.Clear(1)
	if st.State(2) != StateLoginPhone {
		t.Fatal("clearing one chat touched another")
	}
}
