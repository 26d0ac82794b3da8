// Package fsm is the in-memory conversation state machine behind the bot's
// wizards. Each chat is in at most one state at a time and may carry a
// payload, the draft being built step by step. State is deliberately
// process-local: a restart simply drops half-finished wizards.
package fsm

import "sync"

// State names a wizard step. The empty state means no wizard is active.
type State string

const (
	StateIdle State = ""

	// Registration wizard.
	StateRegName     State = "reg:name"
	StateRegAge      State = "reg:age"
	StateRegPhone    State = "reg:phone"
	StateRegPhoto    State = "reg:photo"
	StateRegDocument State = "reg:document"

	// Phone login.
	StateLoginPhone State = "login:phone"

	// Admin test wizard.
	StateTestTitle       State = "test:title"
	StateTestDescription State = "test:description"
	StateTestTimeLimit   State = "test:time_limit"
	StateTestSchedule    State = "test:schedule"

	// Single-field test edits.
	StateEditTitle       State = "test:edit_title"
	StateEditDescription State = "test:edit_description"

	// Admin question wizard.
	StateQuestionText    State = "question:text"
	StateQuestionType    State = "question:type"
	StateQuestionPoints  State = "question:points"
	StateQuestionOptions State = "question:options"

	// Single-step admin prompts.
	StateImportFile State = "import:file"
)

type conversation struct {
	state   State
	payload any
}

// Store maps chat IDs to their active wizard.
type Store struct {
	mu    sync.RWMutex
	convs map[int64]*conversation
}

func NewStore() *Store {
	return &Store{convs: make(map[int64]*conversation)}
}

// State returns the chat's current wizard step, StateIdle if none.
func (s *Store) State(chatID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.convs[chatID]; ok {
		return c.state
	}
	return StateIdle
}

// Set moves the chat to state, keeping any existing payload.
func (s *Store) Set(chatID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.convs[chatID]; ok {
		c.state = state
		return
	}
	s.convs[chatID] = &conversation{state: state}
}

// Start moves the chat to state with a fresh payload, discarding any
// wizard that was in progress.
func (s *Store) Start(chatID int64, state State, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[chatID] = &conversation{state: state, payload: payload}
}

// Payload returns the draft attached to the chat's wizard, or nil.
func (s *Store) Payload(chatID int64) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.convs[chatID]; ok {
		return c.payload
	}
	return nil
}

// Clear ends the chat's wizard and drops its draft.
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.convs, chatID)
}
