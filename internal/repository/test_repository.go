package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

type TestRepository struct {
	pool *pgxpool.Pool
}

func NewTestRepository(pool *pgxpool.Pool) *TestRepository {
	return &TestRepository{pool: pool}
}

const testColumns = `id, title, description, total_questions, max_score, time_limit_minutes, scheduled_time, is_active, created_at`

func scanTest(row pgx.Row) (*model.Test, error) {
	var t model.Test
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.TotalQuestions, &t.MaxScore,
		&t.TimeLimitMinutes, &t.ScheduledTime, &t.IsActive, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestRepository) Create(ctx context.Context, t *model.Test) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO tests (title, description, time_limit_minutes, scheduled_time, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, total_questions, max_score, created_at`,
		t.Title, t.Description, t.TimeLimitMinutes, t.ScheduledTime, t.IsActive).
		Scan(&t.ID, &t.TotalQuestions, &t.MaxScore, &t.CreatedAt)
}

func (r *TestRepository) GetByID(ctx context.Context, id int64) (*model.Test, error) {
	return scanTest(r.pool.QueryRow(ctx,
		`SELECT `+testColumns+` FROM tests WHERE id = $1`, id))
}

func (r *TestRepository) Update(ctx context.Context, t *model.Test) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE tests SET title = $1, description = $2, time_limit_minutes = $3, scheduled_time = $4
		 WHERE id = $5`,
		t.Title, t.Description, t.TimeLimitMinutes, t.ScheduledTime, t.ID)
	return err
}

func (r *TestRepository) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.pool.Exec(ctx, `UPDATE tests SET is_active = $1 WHERE id = $2`, active, id)
	return err
}

// Delete removes the test. Questions, options and results go with it via
// ON DELETE CASCADE.
func (r *TestRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tests WHERE id = $1`, id)
	return err
}

// RefreshCounters recomputes the denormalized question count and max score
// after any question mutation.
func (r *TestRepository) RefreshCounters(ctx context.Context, testID int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE tests SET
			total_questions = (SELECT COUNT(*) FROM questions WHERE test_id = $1),
			max_score = (SELECT COALESCE(SUM(points), 0) FROM questions WHERE test_id = $1)
		 WHERE id = $1`, testID)
	return err
}

func (r *TestRepository) listBy(ctx context.Context, query string, args ...any) ([]model.Test, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []model.Test
	for rows.Next() {
		var t model.Test
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.TotalQuestions, &t.MaxScore,
			&t.TimeLimitMinutes, &t.ScheduledTime, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func (r *TestRepository) ListAll(ctx context.Context) ([]model.Test, error) {
	return r.listBy(ctx, `SELECT `+testColumns+` FROM tests ORDER BY created_at DESC`)
}

// ListAvailable returns tests a verified user may open: active, with at
// least one question, either unscheduled or already past their start time.
func (r *TestRepository) ListAvailable(ctx context.Context, now time.Time) ([]model.Test, error) {
	return r.listBy(ctx,
		`SELECT `+testColumns+` FROM tests
		 WHERE is_active = TRUE
		   AND total_questions > 0
		   AND (scheduled_time IS NULL OR scheduled_time <= $1)
		 ORDER BY created_at DESC`, now)
}

// ListAvailableFor is ListAvailable minus the tests the user has already
// completed, for the "My Tests" view.
func (r *TestRepository) ListAvailableFor(ctx context.Context, now time.Time, userID int64) ([]model.Test, error) {
	return r.listBy(ctx,
		`SELECT `+testColumns+` FROM tests t
		 WHERE t.is_active = TRUE
		   AND t.total_questions > 0
		   AND (t.scheduled_time IS NULL OR t.scheduled_time <= $1)
		   AND NOT EXISTS (
			SELECT 1 FROM test_results r
			WHERE r.test_id = t.id AND r.user_id = $2 AND r.completed_at IS NOT NULL
		   )
		 ORDER BY t.created_at DESC`, now, userID)
}

// ListScheduledDue returns active tests whose scheduled start has arrived,
// for the notifier worker. Dedup is handled by the caller.
func (r *TestRepository) ListScheduledDue(ctx context.Context, now time.Time) ([]model.Test, error) {
	return r.listBy(ctx,
		`SELECT `+testColumns+` FROM tests
		 WHERE is_active = TRUE AND scheduled_time IS NOT NULL AND scheduled_time <= $1
		 ORDER BY scheduled_time ASC`, now)
}
