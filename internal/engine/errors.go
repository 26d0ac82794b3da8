package engine

import (
	"errors"
	"fmt"
	"time"
)

// Typed failures surfaced to the presentation layer. Handlers decide the
// user-facing message; the engine never silently succeeds on these.
var (
	// ErrNoSession means the user has no live session in the store.
	ErrNoSession = errors.New("no active test session")

	// ErrSessionClosed means the session was already finalized.
	ErrSessionClosed = errors.New("session already finalized")

	// ErrTestUnavailable means the test is inactive or not yet open.
	ErrTestUnavailable = errors.New("test unavailable")

	// ErrAlreadyCompleted means the user already has a finalized result
	// for this test.
	ErrAlreadyCompleted = errors.New("test already completed")

	// ErrEmptyTest means the test has no questions to present.
	ErrEmptyTest = errors.New("test has no questions")

	// ErrNotCurrentQuestion means an answer targeted a question that is
	// no longer at the cursor. Rejected without touching session state.
	ErrNotCurrentQuestion = errors.New("answer targets a non-current question")

	// ErrWrongQuestionType means the operation does not apply to the
	// current question's type (e.g. confirm on a single-choice question).
	ErrWrongQuestionType = errors.New("operation does not apply to this question type")
)

// NotStartedError is an ErrTestUnavailable variant carrying how long until
// the test's scheduled start, so the bot can tell the user when to retry.
type NotStartedError struct {
	StartsIn time.Duration
}

func (e *NotStartedError) Error() string {
	return fmt.Sprintf("test opens in %s", e.StartsIn.Round(time.Minute))
}

// Is makes errors.Is(err, ErrTestUnavailable) match.
func (e *NotStartedError) Is(target error) bool {
	return target == ErrTestUnavailable
}
