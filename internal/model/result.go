package model

import "time"

// TestResult is the persisted outcome of one user's attempt at one test.
// A row with CompletedAt == nil is an in-progress attempt that a restarted
// session resumes in place; once CompletedAt is set the row is never
// mutated again.
type TestResult struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	TestID      int64      `json:"test_id"`
	Score       float64    `json:"score"`
	MaxScore    float64    `json:"max_score"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// AnswersData is the serialized answer map, written once at finalization.
	AnswersData []byte    `json:"answers_data,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Completed reports whether the attempt has been finalized.
func (r *TestResult) Completed() bool {
	return r.CompletedAt != nil
}

// Percentage returns the attempt's score as a percentage of the maximum.
func (r *TestResult) Percentage() float64 {
	if r.MaxScore <= 0 {
		return 0
	}
	return r.Score / r.MaxScore * 100
}

// ResultRow is a result joined with its user, for admin views and exports.
type ResultRow struct {
	TestResult
	UserName string `json:"user_name"`
	Phone    string `json:"phone"`
}

// UserResultRow is a result joined with its test, for a user's own history.
type UserResultRow struct {
	TestResult
	TestTitle string `json:"test_title"`
}

// TestStats aggregates attempts for one test.
type TestStats struct {
	Attempts     int     `json:"attempts"`
	Completed    int     `json:"completed"`
	AverageScore float64 `json:"average_score"`
}
