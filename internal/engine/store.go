package engine

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore holds all live sessions, keyed by Telegram user ID. The key
// gives at most one live session per user; cross-user access is safe for
// concurrent timer tasks firing simultaneously.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*TestSession
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*TestSession)}
}

// Get returns the user's live session, or nil.
func (st *SessionStore) Get(telegramID int64) *TestSession {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[telegramID]
}

// Put installs (or replaces) the user's live session.
func (st *SessionStore) Put(s *TestSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.TelegramID] = s
}

// Remove deletes the user's session only if it is still the one identified
// by id, so a finalize racing a replacement never evicts the newer session.
// Reports whether a session was removed.
func (st *SessionStore) Remove(telegramID int64, id uuid.UUID) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[telegramID]
	if !ok || s.ID != id {
		return false
	}
	delete(st.sessions, telegramID)
	return true
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
