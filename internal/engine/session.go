package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

// TestSession is the live, mutable record of one user taking one test.
// Questions is a snapshot of the test's question order at start time; later
// edits to the test never retroactively change an in-progress session.
// All mutation goes through Engine operations, which hold mu.
type TestSession struct {
	ID         uuid.UUID
	UserID     int64 // database user id, used for the result record
	TelegramID int64 // store key
	TestID     int64
	TestTitle  string
	ResultID   int64

	Questions []model.Question
	Cursor    int
	Answers   map[int64]Answer

	StartedAt time.Time
	// Deadline is nil for untimed sessions.
	Deadline *time.Time

	mu        sync.Mutex
	finalized bool
}

// Current returns the question at the cursor. Callers must hold mu.
func (s *TestSession) current() model.Question {
	return s.Questions[s.Cursor]
}

// lastQuestion reports whether the cursor sits on the final question.
// Callers must hold mu.
func (s *TestSession) lastQuestion() bool {
	return s.Cursor >= len(s.Questions)-1
}

// TimeLeft returns the remaining time, or 0 for untimed sessions.
func (s *TestSession) TimeLeft(now time.Time) time.Duration {
	if s.Deadline == nil {
		return 0
	}
	left := s.Deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}
