package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

// CatalogReader is the read-only view of tests, questions and options the
// engine needs. Questions are snapshotted at session start; options are
// fetched per render and again at scoring time for correctness flags.
type CatalogReader interface {
	GetTest(ctx context.Context, id int64) (*model.Test, error)
	GetQuestions(ctx context.Context, testID int64) ([]model.Question, error)
	GetOptions(ctx context.Context, questionID int64) ([]model.Option, error)
}

// ResultStore persists attempt rows. Finalize must update in place so the
// resume contract's reused row ends up as the single result record.
type ResultStore interface {
	FindIncomplete(ctx context.Context, userID, testID int64) (*model.TestResult, error)
	HasCompleted(ctx context.Context, userID, testID int64) (bool, error)
	Create(ctx context.Context, r *model.TestResult) error
	Finalize(ctx context.Context, resultID int64, score, maxScore float64, completedAt time.Time, answers []byte) error
}

// Summary reports a finalized session back to the presentation layer.
type Summary struct {
	TestID      int64
	TestTitle   string
	Earned      float64
	MaxPossible float64
	Percentage  float64
	Grade       Grade
	StartedAt   time.Time
	CompletedAt time.Time
}

// StepResult is the outcome of a mutating operation: either the session is
// still in progress and View describes the question to render, or the
// operation finalized the session and Summary carries the score report.
type StepResult struct {
	View    *QuestionView
	Summary *Summary
}

// ExpiredFunc is invoked after a timer-forced finalize so the bot can tell
// the user their time ran out. Never called for user-driven submits.
type ExpiredFunc func(telegramID int64, sum *Summary)

// Engine drives every live TestSession: cursor movement, answer recording,
// type-specific answer rules, the time limit, and finalization.
type Engine struct {
	store   *SessionStore
	catalog CatalogReader
	results ResultStore
	timers  *TimerSupervisor
	log     zerolog.Logger

	onExpired ExpiredFunc
}

// New creates an Engine around the given collaborators.
func New(store *SessionStore, catalog CatalogReader, results ResultStore, log zerolog.Logger) *Engine {
	return &Engine{
		store:   store,
		catalog: catalog,
		results: results,
		timers:  NewTimerSupervisor(),
		log:     log.With().Str("component", "engine").Logger(),
	}
}

// OnExpired registers the timer-expiry notification hook.
func (e *Engine) OnExpired(fn ExpiredFunc) {
	e.onExpired = fn
}

// Store exposes the session store for shutdown accounting.
func (e *Engine) Store() *SessionStore {
	return e.store
}

// Start creates (or resumes) a session for user on testID.
//
// Idempotent resume: if the user already has a live session for this test
// the same session is returned with cursor and answers intact. An
// incomplete persisted result row is reused rather than duplicated.
func (e *Engine) Start(ctx context.Context, user *model.User, testID int64) (*TestSession, error) {
	if user.TelegramID == nil {
		return nil, ErrNoSession
	}
	tgID := *user.TelegramID

	if s := e.store.Get(tgID); s != nil {
		if s.TestID == testID {
			return s, nil
		}
		// Switching tests abandons the previous session. Its result row
		// stays incomplete so that test can be resumed later.
		e.timers.Cancel(s.ID)
		e.store.Remove(tgID, s.ID)
	}

	test, err := e.catalog.GetTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("get test: %w", err)
	}
	if test == nil || !test.IsActive {
		return nil, ErrTestUnavailable
	}

	now := time.Now()
	if test.ScheduledTime != nil && test.ScheduledTime.After(now) {
		return nil, &NotStartedError{StartsIn: test.ScheduledTime.Sub(now)}
	}

	done, err := e.results.HasCompleted(ctx, user.ID, testID)
	if err != nil {
		return nil, fmt.Errorf("check completed result: %w", err)
	}
	if done {
		return nil, ErrAlreadyCompleted
	}

	questions, err := e.catalog.GetQuestions(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrEmptyTest
	}

	result, err := e.results.FindIncomplete(ctx, user.ID, testID)
	if err != nil {
		return nil, fmt.Errorf("find incomplete result: %w", err)
	}
	if result == nil {
		result = &model.TestResult{
			UserID:    user.ID,
			TestID:    testID,
			MaxScore:  float64(test.MaxScore),
			StartedAt: now,
		}
		if err := e.results.Create(ctx, result); err != nil {
			return nil, fmt.Errorf("create result: %w", err)
		}
	}

	s := &TestSession{
		ID:         uuid.New(),
		UserID:     user.ID,
		TelegramID: tgID,
		TestID:     testID,
		TestTitle:  test.Title,
		ResultID:   result.ID,
		Questions:  questions,
		Answers:    make(map[int64]Answer),
		StartedAt:  now,
	}
	if test.TimeLimitMinutes > 0 {
		deadline := now.Add(time.Duration(test.TimeLimitMinutes) * time.Minute)
		s.Deadline = &deadline
	}

	e.store.Put(s)

	if s.Deadline != nil {
		id, key := s.ID, s.TelegramID
		e.timers.Schedule(id, s.Deadline.Sub(now), func() {
			e.expire(key, id)
		})
	}

	e.log.Info().
		Int64("user_id", user.ID).
		Int64("test_id", testID).
		Int("questions", len(questions)).
		Bool("timed", s.Deadline != nil).
		Msg("session started")

	return s, nil
}

// RecordAnswer applies an option tap to the current question.
//
// single: replaces the answer and auto-advances, so every selection finalizes
// that question. multiple: toggles membership and stays put; the user must
// Confirm to move on.
func (e *Engine) RecordAnswer(ctx context.Context, telegramID, questionID, optionID int64) (*StepResult, error) {
	s := e.store.Get(telegramID)
	if s == nil {
		return nil, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return nil, ErrSessionClosed
	}

	q := s.current()
	if q.ID != questionID {
		return nil, ErrNotCurrentQuestion
	}

	switch q.Type {
	case model.QuestionTypeSingle:
		s.Answers[q.ID] = Answer{Kind: AnswerSingle, OptionIDs: []int64{optionID}}
		return e.advanceLocked(ctx, s)
	case model.QuestionTypeMultiple:
		s.Answers[q.ID] = s.Answers[q.ID].toggle(optionID)
		if len(s.Answers[q.ID].OptionIDs) == 0 {
			delete(s.Answers, q.ID)
		}
		return e.viewStepLocked(ctx, s)
	default:
		return nil, ErrWrongQuestionType
	}
}

// RecordTextAnswer stores the trimmed text as the sole answer for the
// current text question and advances. Empty text counts as a skip.
func (e *Engine) RecordTextAnswer(ctx context.Context, telegramID int64, text string) (*StepResult, error) {
	s := e.store.Get(telegramID)
	if s == nil {
		return nil, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return nil, ErrSessionClosed
	}

	q := s.current()
	if q.Type != model.QuestionTypeText {
		return nil, ErrWrongQuestionType
	}

	if trimmed := strings.TrimSpace(text); trimmed != "" {
		s.Answers[q.ID] = Answer{Kind: AnswerText, Text: trimmed}
	}
	return e.advanceLocked(ctx, s)
}

// Confirm closes the current multiple-choice question and advances, however
// many options are selected; zero is a valid "answered nothing" state.
func (e *Engine) Confirm(ctx context.Context, telegramID int64) (*StepResult, error) {
	s := e.store.Get(telegramID)
	if s == nil {
		return nil, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return nil, ErrSessionClosed
	}
	if s.current().Type != model.QuestionTypeMultiple {
		return nil, ErrWrongQuestionType
	}
	return e.advanceLocked(ctx, s)
}

// Skip advances past the current question without touching its answer.
func (e *Engine) Skip(ctx context.Context, telegramID int64) (*StepResult, error) {
	s := e.store.Get(telegramID)
	if s == nil {
		return nil, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return nil, ErrSessionClosed
	}
	return e.advanceLocked(ctx, s)
}

// Direction selects where Navigate moves the cursor.
type Direction int

const (
	Prev Direction = iota
	Next
)

// Navigate moves the cursor one position for free review. Clamped to the
// question range: never wraps, never errors at a boundary, never finalizes.
func (e *Engine) Navigate(ctx context.Context, telegramID int64, dir Direction) (*StepResult, error) {
	s := e.store.Get(telegramID)
	if s == nil {
		return nil, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return nil, ErrSessionClosed
	}

	switch dir {
	case Prev:
		if s.Cursor > 0 {
			s.Cursor--
		}
	case Next:
		if s.Cursor < len(s.Questions)-1 {
			s.Cursor++
		}
	}
	return e.viewStepLocked(ctx, s)
}

// Submit finalizes the session explicitly: score, persist, cancel the
// timer, drop the session from the store.
func (e *Engine) Submit(ctx context.Context, telegramID int64) (*Summary, error) {
	s := e.store.Get(telegramID)
	if s == nil {
		return nil, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return e.finalizeLocked(ctx, s)
}

// View renders the current question without mutating the session.
func (e *Engine) View(ctx context.Context, telegramID int64) (*QuestionView, error) {
	s := e.store.Get(telegramID)
	if s == nil {
		return nil, ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finalized {
		return nil, ErrSessionClosed
	}
	return e.viewLocked(ctx, s)
}

// advanceLocked moves the cursor forward; stepping past the last question
// finalizes the session. Callers hold s.mu.
func (e *Engine) advanceLocked(ctx context.Context, s *TestSession) (*StepResult, error) {
	if s.lastQuestion() {
		sum, err := e.finalizeLocked(ctx, s)
		if err != nil {
			return nil, err
		}
		return &StepResult{Summary: sum}, nil
	}
	s.Cursor++
	return e.viewStepLocked(ctx, s)
}

func (e *Engine) viewStepLocked(ctx context.Context, s *TestSession) (*StepResult, error) {
	v, err := e.viewLocked(ctx, s)
	if err != nil {
		return nil, err
	}
	return &StepResult{View: v}, nil
}

// finalizeLocked is the single finalize critical section shared by explicit
// submits, auto-finalize past the last question, and the timer. Exactly one
// caller scores and persists; later callers observe ErrSessionClosed.
// If the result write fails the session stays in progress so submit can be
// retried.
func (e *Engine) finalizeLocked(ctx context.Context, s *TestSession) (*Summary, error) {
	if s.finalized {
		return nil, ErrSessionClosed
	}

	correct := make(map[int64][]int64, len(s.Questions))
	for _, q := range s.Questions {
		if q.Type == model.QuestionTypeText {
			continue
		}
		opts, err := e.catalog.GetOptions(ctx, q.ID)
		if err != nil {
			return nil, fmt.Errorf("get options for scoring: %w", err)
		}
		for _, o := range opts {
			if o.IsCorrect {
				correct[q.ID] = append(correct[q.ID], o.ID)
			}
		}
	}

	breakdown := Score(s.Questions, correct, s.Answers)

	data, err := MarshalAnswers(s.Answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}

	now := time.Now()
	if err := e.results.Finalize(ctx, s.ResultID, breakdown.Earned, breakdown.MaxPossible, now, data); err != nil {
		return nil, fmt.Errorf("persist result: %w", err)
	}

	s.finalized = true
	e.timers.Cancel(s.ID)
	e.store.Remove(s.TelegramID, s.ID)

	e.log.Info().
		Int64("user_id", s.UserID).
		Int64("test_id", s.TestID).
		Float64("score", breakdown.Earned).
		Float64("max", breakdown.MaxPossible).
		Msg("session finalized")

	return &Summary{
		TestID:      s.TestID,
		TestTitle:   s.TestTitle,
		Earned:      breakdown.Earned,
		MaxPossible: breakdown.MaxPossible,
		Percentage:  breakdown.Percentage(),
		Grade:       GradeFor(breakdown.Percentage()),
		StartedAt:   s.StartedAt,
		CompletedAt: now,
	}, nil
}

// expire is the timer-fired forced submit. Both "session gone" and
// "already finalized" are normal, silent outcomes here.
func (e *Engine) expire(telegramID int64, sessionID uuid.UUID) {
	s := e.store.Get(telegramID)
	if s == nil || s.ID != sessionID {
		return
	}
	s.mu.Lock()
	sum, err := e.finalizeLocked(context.Background(), s)
	s.mu.Unlock()

	if err != nil {
		if !errors.Is(err, ErrSessionClosed) {
			e.log.Warn().Err(err).
				Int64("telegram_id", telegramID).
				Msg("forced submit failed")
		}
		return
	}

	if e.onExpired != nil {
		e.onExpired(telegramID, sum)
	}
}
