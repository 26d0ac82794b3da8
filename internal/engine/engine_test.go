package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

// fakeCatalog serves a fixed test with its questions and options.
type fakeCatalog struct {
	test      *model.Test
	questions []model.Question
	options   map[int64][]model.Option
}

func (f *fakeCatalog) GetTest(_ context.Context, id int64) (*model.Test, error) {
	if f.test == nil || f.test.ID != id {
		return nil, nil
	}
	cp := *f.test
	return &cp, nil
}

func (f *fakeCatalog) GetQuestions(_ context.Context, testID int64) ([]model.Question, error) {
	if f.test == nil || f.test.ID != testID {
		return nil, nil
	}
	return append([]model.Question(nil), f.questions...), nil
}

func (f *fakeCatalog) GetOptions(_ context.Context, questionID int64) ([]model.Option, error) {
	return f.options[questionID], nil
}

// fakeResults is an in-memory ResultStore with injectable finalize failure.
type fakeResults struct {
	mu          sync.Mutex
	nextID      int64
	rows        map[int64]*model.TestResult
	finalized   int
	failNext    bool
	lastScore   float64
	lastMax     float64
	lastAnswers []byte
}

func newFakeResults() *fakeResults {
	return &fakeResults{rows: make(map[int64]*model.TestResult)}
}

func (f *fakeResults) FindIncomplete(_ context.Context, userID, testID int64) (*model.TestResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.UserID == userID && r.TestID == testID && r.CompletedAt == nil {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeResults) HasCompleted(_ context.Context, userID, testID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.UserID == userID && r.TestID == testID && r.CompletedAt != nil {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeResults) Create(_ context.Context, r *model.TestResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	r.ID = f.nextID
	cp := *r
	f.rows[r.ID] = &cp
	return nil
}

func (f *fakeResults) Finalize(_ context.Context, resultID int64, score, maxScore float64, completedAt time.Time, answers []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return errors.New("storage down")
	}
	r, ok := f.rows[resultID]
	if !ok {
		return errors.New("no such result")
	}
	r.Score = score
	r.MaxScore = maxScore
	r.CompletedAt = &completedAt
	f.finalized++
	f.lastScore = score
	f.lastMax = maxScore
	f.lastAnswers = answers
	return nil
}

// newTestEngine builds an engine over a three-question test:
//
//	q1 single  (2 pts) options 10 (correct), 11
//	q2 multiple (4 pts) options 20, 21 (correct), 22 (correct), 23
//	q3 text    (3 pts)
func newTestEngine(t *testing.T) (*Engine, *fakeCatalog, *fakeResults) {
	t.Helper()

	catalog := &fakeCatalog{
		test: &model.Test{ID: 1, Title: "Algebra", IsActive: true, MaxScore: 9},
		questions: []model.Question{
			{ID: 101, TestID: 1, Text: "q1", Type: model.QuestionTypeSingle, Points: 2, OrderNum: 1},
			{ID: 102, TestID: 1, Text: "q2", Type: model.QuestionTypeMultiple, Points: 4, OrderNum: 2},
			{ID: 103, TestID: 1, Text: "q3", Type: model.QuestionTypeText, Points: 3, OrderNum: 3},
		},
		options: map[int64][]model.Option{
			101: {
				{ID: 10, QuestionID: 101, Text: "a", IsCorrect: true},
				{ID: 11, QuestionID: 101, Text: "b"},
			},
			102: {
				{ID: 20, QuestionID: 102, Text: "a"},
				{ID: 21, QuestionID: 102, Text: "b", IsCorrect: true},
				{ID: 22, QuestionID: 102, Text: "c", IsCorrect: true},
				{ID: 23, QuestionID: 102, Text: "d"},
			},
		},
	}
	results := newFakeResults()
	eng := New(NewSessionStore(), catalog, results, zerolog.Nop())
	return eng, catalog, results
}

func testUser(tgID int64) *model.User {
	return &model.User{ID: 7, TelegramID: &tgID, Name: "Student", IsActive: true}
}

func TestStartCreatesSession(t *testing.T) {
	eng, _, results := newTestEngine(t)
	ctx := context.Background()

	s, err := eng.Start(ctx, testUser(500), 1)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(s.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(s.Questions))
	}
	if s.Cursor != 0 {
		t.Fatalf("cursor = %d, want 0", s.Cursor)
	}
	if s.Deadline != nil {
		t.Fatal("untimed test got a deadline")
	}
	if results.nextID != 1 {
		t.Fatalf("result rows = %d, want 1", results.nextID)
	}
}

func TestStartIsIdempotentForSameTest(t *testing.T) {
	eng, _, results := newTestEngine(t)
	ctx := context.Background()

	s1, err := eng.Start(ctx, testUser(500), 1)
	if err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if _, err := eng.RecordAnswer(ctx, 500, 101, 10); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	s2, err := eng.Start(ctx, testUser(500), 1)
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if s1.ID != s2.ID {
		t.Fatal("second Start replaced the live session")
	}
	if s2.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1 (answers must survive resume)", s2.Cursor)
	}
	if results.nextID != 1 {
		t.Fatalf("result rows = %d, want 1 (row must be reused)", results.nextID)
	}
}

func TestStartChecksAvailability(t *testing.T) {
	eng, catalog, _ := newTestEngine(t)
	ctx := context.Background()

	catalog.test.IsActive = false
	if _, err := eng.Start(ctx, testUser(500), 1); !errors.Is(err, ErrTestUnavailable) {
		t.Fatalf("inactive test: err = %v, want ErrTestUnavailable", err)
	}
	catalog.test.IsActive = true

	future := time.Now().Add(time.Hour)
	catalog.test.ScheduledTime = &future
	_, err := eng.Start(ctx, testUser(500), 1)
	var ns *NotStartedError
	if !errors.As(err, &ns) {
		t.Fatalf("scheduled test: err = %v, want NotStartedError", err)
	}
	if !errors.Is(err, ErrTestUnavailable) {
		t.Fatal("NotStartedError must match ErrTestUnavailable")
	}
	if ns.StartsIn <= 0 || ns.StartsIn > time.Hour {
		t.Fatalf("StartsIn = %v out of range", ns.StartsIn)
	}
	catalog.test.ScheduledTime = nil

	catalog.questions = nil
	if _, err := eng.Start(ctx, testUser(500), 1); !errors.Is(err, ErrEmptyTest) {
		t.Fatalf("empty test: err = %v, want ErrEmptyTest", err)
	}
}

func TestStartRefusesCompletedTest(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := eng.Submit(ctx, 500); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := eng.Start(ctx, testUser(500), 1); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("restart after submit: err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestSingleAnswerAutoAdvances(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	step, err := eng.RecordAnswer(ctx, 500, 101, 10)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if step.View == nil || step.View.Position != 2 {
		t.Fatalf("view = %+v, want position 2", step.View)
	}

	// A stale tap on question 1 is rejected once the cursor moved on.
	if _, err := eng.RecordAnswer(ctx, 500, 101, 11); !errors.Is(err, ErrNotCurrentQuestion) {
		t.Fatalf("stale tap: err = %v, want ErrNotCurrentQuestion", err)
	}
}

func TestMultipleToggleAndConfirm(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := eng.RecordAnswer(ctx, 500, 101, 10); err != nil {
		t.Fatalf("answer q1: %v", err)
	}

	// Confirm on a multiple question is required; taps only toggle.
	step, err := eng.RecordAnswer(ctx, 500, 102, 21)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if step.View.Position != 2 {
		t.Fatal("toggle must not advance")
	}
	if !selectedInView(step.View, 21) {
		t.Fatal("option 21 not selected after toggle")
	}

	// Same tap again deselects.
	step, err = eng.RecordAnswer(ctx, 500, 102, 21)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if selectedInView(step.View, 21) {
		t.Fatal("option 21 still selected after second toggle")
	}

	if _, err := eng.RecordAnswer(ctx, 500, 102, 21); err != nil {
		t.Fatalf("re-toggle: %v", err)
	}
	if _, err := eng.RecordAnswer(ctx, 500, 102, 22); err != nil {
		t.Fatalf("toggle 22: %v", err)
	}

	step, err = eng.Confirm(ctx, 500)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if step.View == nil || step.View.Position != 3 {
		t.Fatalf("after confirm view = %+v, want position 3", step.View)
	}

	// Confirm only applies to multiple questions.
	if _, err := eng.Confirm(ctx, 500); !errors.Is(err, ErrWrongQuestionType) {
		t.Fatalf("confirm on text question: err = %v, want ErrWrongQuestionType", err)
	}
}

func TestNavigateClamps(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	step, err := eng.Navigate(ctx, 500, Prev)
	if err != nil {
		t.Fatalf("Prev at start: %v", err)
	}
	if step.View.Position != 1 {
		t.Fatalf("position = %d, want 1 (clamped)", step.View.Position)
	}

	for i := 0; i < 5; i++ {
		step, err = eng.Navigate(ctx, 500, Next)
		if err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
	}
	if step.View.Position != 3 {
		t.Fatalf("position = %d, want 3 (clamped, never finalizes)", step.View.Position)
	}
	if step.Summary != nil {
		t.Fatal("Navigate must never finalize")
	}
}

func TestSkipPastLastQuestionFinalizes(t *testing.T) {
	eng, _, results := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := eng.Skip(ctx, 500); err != nil {
			t.Fatalf("Skip %d: %v", i, err)
		}
	}
	step, err := eng.Skip(ctx, 500)
	if err != nil {
		t.Fatalf("final Skip: %v", err)
	}
	if step.Summary == nil {
		t.Fatal("skipping past the last question must finalize")
	}
	if step.Summary.Earned != 0 {
		t.Fatalf("earned = %v, want 0 for all-skipped", step.Summary.Earned)
	}
	if step.Summary.MaxPossible != 9 {
		t.Fatalf("max = %v, want 9", step.Summary.MaxPossible)
	}
	if results.finalized != 1 {
		t.Fatalf("finalized = %d, want 1", results.finalized)
	}
}

func TestFullRunScoring(t *testing.T) {
	eng, _, results := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// q1 correct: +2.
	if _, err := eng.RecordAnswer(ctx, 500, 101, 10); err != nil {
		t.Fatalf("q1: %v", err)
	}
	// q2 half of the correct set: +4 * 1/2.
	if _, err := eng.RecordAnswer(ctx, 500, 102, 21); err != nil {
		t.Fatalf("q2 toggle: %v", err)
	}
	if _, err := eng.Confirm(ctx, 500); err != nil {
		t.Fatalf("q2 confirm: %v", err)
	}
	// q3 text: contributes to max only.
	step, err := eng.RecordTextAnswer(ctx, 500, "  the water cycle  ")
	if err != nil {
		t.Fatalf("q3: %v", err)
	}

	sum := step.Summary
	if sum == nil {
		t.Fatal("answering the last question must finalize")
	}
	if sum.Earned != 4 {
		t.Fatalf("earned = %v, want 4", sum.Earned)
	}
	if sum.MaxPossible != 9 {
		t.Fatalf("max = %v, want 9", sum.MaxPossible)
	}
	wantPct := 4.0 / 9.0 * 100
	if diff := sum.Percentage - wantPct; diff < -0.001 || diff > 0.001 {
		t.Fatalf("percentage = %v, want %v", sum.Percentage, wantPct)
	}
	if sum.Grade != GradeBad {
		t.Fatalf("grade = %v, want GradeBad", sum.Grade)
	}
	if len(results.lastAnswers) == 0 {
		t.Fatal("answer dump not persisted")
	}
	if eng.Store().Get(500) != nil {
		t.Fatal("session still live after finalize")
	}
}

func TestSubmitRetryableOnStorageFailure(t *testing.T) {
	eng, _, results := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	results.failNext = true
	if _, err := eng.Submit(ctx, 500); err == nil {
		t.Fatal("Submit should surface the storage failure")
	}
	if eng.Store().Get(500) == nil {
		t.Fatal("session must stay live after a failed finalize")
	}

	sum, err := eng.Submit(ctx, 500)
	if err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if sum == nil || results.finalized != 1 {
		t.Fatalf("retry did not finalize exactly once (finalized=%d)", results.finalized)
	}
}

func TestConcurrentSubmitFinalizesOnce(t *testing.T) {
	eng, _, results := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	const n = 16
	var wg sync.WaitGroup
	okCount := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := eng.Submit(ctx, 500); err == nil {
				okCount <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(okCount)

	succeeded := 0
	for range okCount {
		succeeded++
	}
	if succeeded != 1 {
		t.Fatalf("submits succeeded = %d, want exactly 1", succeeded)
	}
	if results.finalized != 1 {
		t.Fatalf("finalized = %d, want 1", results.finalized)
	}
}

func TestTimerForcesSubmit(t *testing.T) {
	eng, catalog, results := newTestEngine(t)
	ctx := context.Background()

	catalog.test.TimeLimitMinutes = 1

	var mu sync.Mutex
	var expired []int64
	eng.OnExpired(func(tgID int64, sum *Summary) {
		mu.Lock()
		expired = append(expired, tgID)
		mu.Unlock()
	})

	s, err := eng.Start(ctx, testUser(500), 1)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Deadline == nil {
		t.Fatal("timed test got no deadline")
	}
	if eng.timers.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", eng.timers.Pending())
	}

	// Fire the expiry path directly rather than waiting out the clock.
	eng.expire(500, s.ID)

	mu.Lock()
	got := len(expired)
	mu.Unlock()
	if got != 1 || expired[0] != 500 {
		t.Fatalf("expired callbacks = %v, want [500]", expired)
	}
	if results.finalized != 1 {
		t.Fatalf("finalized = %d, want 1", results.finalized)
	}
	if eng.Store().Get(500) != nil {
		t.Fatal("session still live after expiry")
	}

	// A late duplicate fire is silent.
	eng.expire(500, s.ID)
	mu.Lock()
	got = len(expired)
	mu.Unlock()
	if got != 1 {
		t.Fatalf("duplicate expiry invoked the callback again (%d)", got)
	}
}

func TestSubmitCancelsTimer(t *testing.T) {
	eng, catalog, _ := newTestEngine(t)
	ctx := context.Background()

	catalog.test.TimeLimitMinutes = 1
	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := eng.Submit(ctx, 500); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if eng.timers.Pending() != 0 {
		t.Fatalf("pending timers = %d after submit, want 0", eng.timers.Pending())
	}
}

func TestSwitchingTestsAbandonsSession(t *testing.T) {
	eng, catalog, _ := newTestEngine(t)
	ctx := context.Background()

	s1, err := eng.Start(ctx, testUser(500), 1)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Point the catalog at a different test and start it.
	catalog.test = &model.Test{ID: 2, Title: "Geometry", IsActive: true, MaxScore: 2}
	catalog.questions = []model.Question{
		{ID: 201, TestID: 2, Text: "g1", Type: model.QuestionTypeSingle, Points: 2, OrderNum: 1},
	}
	catalog.options[201] = []model.Option{
		{ID: 30, QuestionID: 201, Text: "a", IsCorrect: true},
		{ID: 31, QuestionID: 201, Text: "b"},
	}

	s2, err := eng.Start(ctx, testUser(500), 2)
	if err != nil {
		t.Fatalf("Start second test: %v", err)
	}
	if s2.ID == s1.ID {
		t.Fatal("expected a fresh session for the new test")
	}
	if got := eng.Store().Get(500); got == nil || got.ID != s2.ID {
		t.Fatal("store does not hold the new session")
	}
}

func TestViewRendersOptionsAndFlags(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.Start(ctx, testUser(500), 1); err != nil {
		t.Fatalf("Start: %v", err)
	}

	v, err := eng.View(ctx, 500)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if v.Position != 1 || v.Total != 3 {
		t.Fatalf("position/total = %d/%d, want 1/3", v.Position, v.Total)
	}
	if v.CanPrev || !v.CanNext {
		t.Fatalf("CanPrev/CanNext = %v/%v, want false/true", v.CanPrev, v.CanNext)
	}
	if len(v.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(v.Options))
	}
	if v.Options[0].Index != 1 || v.Options[1].Index != 2 {
		t.Fatal("option indexes must be 1-based and ordered")
	}

	if _, err := eng.View(ctx, 999); !errors.Is(err, ErrNoSession) {
		t.Fatalf("View without session: err = %v, want ErrNoSession", err)
	}
}

func selectedInView(v *QuestionView, optionID int64) bool {
	for _, o := range v.Options {
		if o.ID == optionID {
			return o.Selected
		}
	}
	return false
}
