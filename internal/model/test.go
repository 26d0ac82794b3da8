package model

import "time"

// Test represents a quiz authored by the admin. TotalQuestions and MaxScore
// are informational; the real question list lives in the questions table and
// the real maximum is the sum of question points.
type Test struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	TotalQuestions int     `json:"total_questions"`
	MaxScore       float64 `json:"max_score"`
	// TimeLimitMinutes of 0 means unlimited.
	TimeLimitMinutes int        `json:"time_limit_minutes"`
	ScheduledTime    *time.Time `json:"scheduled_time,omitempty"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
}

// CreateTestForm collects the admin test-creation wizard fields.
type CreateTestForm struct {
	Title            string     `validate:"required,min=1,max=200"`
	Description      *string    `validate:"omitempty,max=2000"`
	TotalQuestions   int        `validate:"min=0"`
	TimeLimitMinutes int        `validate:"min=0,max=480"`
	ScheduledTime    *time.Time `validate:"-"`
}
