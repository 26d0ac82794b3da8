package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/excel"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/repository"
	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/validator"
)

// TestService owns the admin side of the catalog (tests, questions,
// options) and the read path the session engine runs on.
type TestService struct {
	testRepo     *repository.TestRepository
	questionRepo *repository.QuestionRepository
	resultRepo   *repository.ResultRepository
	log          zerolog.Logger
}

func NewTestService(testRepo *repository.TestRepository, questionRepo *repository.QuestionRepository, resultRepo *repository.ResultRepository, log zerolog.Logger) *TestService {
	return &TestService{
		testRepo:     testRepo,
		questionRepo: questionRepo,
		resultRepo:   resultRepo,
		log:          log.With().Str("component", "test_service").Logger(),
	}
}

// GetTest, GetQuestions and GetOptions form the engine's catalog view.

func (s *TestService) GetTest(ctx context.Context, id int64) (*model.Test, error) {
	return s.testRepo.GetByID(ctx, id)
}

func (s *TestService) GetQuestions(ctx context.Context, testID int64) ([]model.Question, error) {
	return s.questionRepo.GetByTest(ctx, testID)
}

func (s *TestService) GetOptions(ctx context.Context, questionID int64) ([]model.Option, error) {
	return s.questionRepo.GetOptions(ctx, questionID)
}

func (s *TestService) GetQuestion(ctx context.Context, id int64) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// CreateTest creates a test in the inactive state. The admin activates it
// once questions are in place.
func (s *TestService) CreateTest(ctx context.Context, form *model.CreateTestForm) (*model.Test, error) {
	if fields := validator.Check(form); len(fields) > 0 {
		return nil, &validator.FieldErrors{Fields: fields}
	}

	t := &model.Test{
		Title:            strings.TrimSpace(form.Title),
		Description:      form.Description,
		TimeLimitMinutes: form.TimeLimitMinutes,
		ScheduledTime:    form.ScheduledTime,
	}
	if err := s.testRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info().Int64("test_id", t.ID).Str("title", t.Title).Msg("test created")
	return t, nil
}

// ToggleActive flips the test's availability and returns the new state.
func (s *TestService) ToggleActive(ctx context.Context, testID int64) (bool, error) {
	t, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, ErrTestNotFound
	}
	if err := s.testRepo.SetActive(ctx, testID, !t.IsActive); err != nil {
		return false, err
	}
	return !t.IsActive, nil
}

func (s *TestService) DeleteTest(ctx context.Context, testID int64) error {
	if err := s.testRepo.Delete(ctx, testID); err != nil {
		return err
	}
	s.log.Info().Int64("test_id", testID).Msg("test deleted")
	return nil
}

func (s *TestService) ListAll(ctx context.Context) ([]model.Test, error) {
	return s.testRepo.ListAll(ctx)
}

func (s *TestService) ListAvailable(ctx context.Context) ([]model.Test, error) {
	return s.testRepo.ListAvailable(ctx, time.Now())
}

// ListAvailableFor narrows ListAvailable to tests the user has not yet
// completed.
func (s *TestService) ListAvailableFor(ctx context.Context, userID int64) ([]model.Test, error) {
	return s.testRepo.ListAvailableFor(ctx, time.Now(), userID)
}

// Rename changes the test's title, keeping everything else.
func (s *TestService) Rename(ctx context.Context, testID int64, title string) (*model.Test, error) {
	t, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTestNotFound
	}
	t.Title = strings.TrimSpace(title)
	if err := s.testRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Redescribe replaces the test's description; nil clears it.
func (s *TestService) Redescribe(ctx context.Context, testID int64, description *string) (*model.Test, error) {
	t, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTestNotFound
	}
	t.Description = description
	if err := s.testRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// AddQuestion appends a wizard-authored question and refreshes the test's
// denormalized counters.
func (s *TestService) AddQuestion(ctx context.Context, testID int64, form *model.QuestionForm) (*model.Question, error) {
	if fields := validator.Check(form); len(fields) > 0 {
		return nil, &validator.FieldErrors{Fields: fields}
	}

	qType := model.QuestionType(form.Type)
	points := form.Points
	if points <= 0 {
		points = 1.0
	}

	var options []model.Option
	if qType != model.QuestionTypeText {
		var err error
		options, err = ParseOptions(form.OptionsRaw)
		if err != nil {
			return nil, err
		}
	}

	q := &model.Question{
		TestID: testID,
		Text:   strings.TrimSpace(form.Text),
		Type:   qType,
		Points: points,
	}
	if err := s.questionRepo.CreateWithOptions(ctx, q, options); err != nil {
		return nil, err
	}
	if err := s.testRepo.RefreshCounters(ctx, testID); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *TestService) DeleteQuestion(ctx context.Context, questionID int64) error {
	q, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return err
	}
	if q == nil {
		return nil
	}
	if err := s.questionRepo.Delete(ctx, questionID); err != nil {
		return err
	}
	return s.testRepo.RefreshCounters(ctx, q.TestID)
}

// ImportQuestions loads a question workbook into the test. Returns the
// number of questions added.
func (s *TestService) ImportQuestions(ctx context.Context, testID int64, r io.Reader) (int, error) {
	t, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return 0, err
	}
	if t == nil {
		return 0, ErrTestNotFound
	}

	parsed, err := excel.ParseQuestions(r)
	if err != nil {
		return 0, err
	}

	for _, pq := range parsed {
		q := &model.Question{
			TestID: testID,
			Text:   pq.Text,
			Type:   pq.Type,
			Points: pq.Points,
		}
		if err := s.questionRepo.CreateWithOptions(ctx, q, pq.Options); err != nil {
			return 0, err
		}
	}
	if err := s.testRepo.RefreshCounters(ctx, testID); err != nil {
		return 0, err
	}

	s.log.Info().Int64("test_id", testID).Int("questions", len(parsed)).Msg("questions imported")
	return len(parsed), nil
}

// ExportResults builds the results workbook for a test.
func (s *TestService) ExportResults(ctx context.Context, testID int64) (*excelize.File, error) {
	t, err := s.testRepo.GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTestNotFound
	}
	results, err := s.resultRepo.ListByTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	return excel.BuildResults(results)
}

// Template returns the blank question import workbook.
func (s *TestService) Template() (*excelize.File, error) {
	return excel.BuildTemplate()
}

func (s *TestService) Stats(ctx context.Context, testID int64) (*model.TestStats, error) {
	return s.resultRepo.StatsByTest(ctx, testID)
}

// UserResults returns a user's completed attempts for the results menu.
func (s *TestService) UserResults(ctx context.Context, userID int64) ([]model.UserResultRow, error) {
	return s.resultRepo.ListByUser(ctx, userID)
}

// ParseOptions parses the ||-joined option syntax the question wizard
// shares with the Excel import: each entry is an option, a leading *
// marks it correct.
func ParseOptions(raw string) ([]model.Option, error) {
	var options []model.Option
	correct := 0
	for _, part := range strings.Split(raw, "||") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		o := model.Option{Text: part}
		if strings.HasPrefix(part, "*") {
			o.Text = strings.TrimSpace(strings.TrimPrefix(part, "*"))
			o.IsCorrect = true
			correct++
		}
		if o.Text == "" {
			continue
		}
		options = append(options, o)
	}
	if len(options) < 2 {
		return nil, ErrNoOptions
	}
	if correct == 0 {
		return nil, ErrNoCorrect
	}
	return options, nil
}
