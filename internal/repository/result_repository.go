package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

func (r *ResultRepository) Create(ctx context.Context, res *model.TestResult) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO test_results (user_id, test_id, max_score, started_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		res.UserID, res.TestID, res.MaxScore, res.StartedAt).
		Scan(&res.ID, &res.CreatedAt)
}

// FindIncomplete returns the user's open attempt on a test, if one exists.
func (r *ResultRepository) FindIncomplete(ctx context.Context, userID, testID int64) (*model.TestResult, error) {
	var res model.TestResult
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, test_id, score, max_score, started_at, completed_at, answers_data, created_at
		 FROM test_results
		 WHERE user_id = $1 AND test_id = $2 AND completed_at IS NULL
		 ORDER BY started_at DESC LIMIT 1`,
		userID, testID).
		Scan(&res.ID, &res.UserID, &res.TestID, &res.Score, &res.MaxScore,
			&res.StartedAt, &res.CompletedAt, &res.AnswersData, &res.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResultRepository) HasCompleted(ctx context.Context, userID, testID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM test_results
			WHERE user_id = $1 AND test_id = $2 AND completed_at IS NOT NULL
		 )`, userID, testID).Scan(&exists)
	return exists, err
}

// Finalize writes the score and answer dump in one update, turning the open
// attempt row into the immutable completed record.
func (r *ResultRepository) Finalize(ctx context.Context, resultID int64, score, maxScore float64, completedAt time.Time, answers []byte) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE test_results
		 SET score = $1, max_score = $2, completed_at = $3, answers_data = $4
		 WHERE id = $5 AND completed_at IS NULL`,
		score, maxScore, completedAt, answers, resultID)
	return err
}

// ListByUser returns the user's completed attempts, newest first, with the
// test title for display.
func (r *ResultRepository) ListByUser(ctx context.Context, userID int64) ([]model.UserResultRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.id, r.user_id, r.test_id, r.score, r.max_score, r.started_at, r.completed_at, r.created_at,
			t.title
		 FROM test_results r
		 JOIN tests t ON t.id = r.test_id
		 WHERE r.user_id = $1 AND r.completed_at IS NOT NULL
		 ORDER BY r.completed_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.UserResultRow
	for rows.Next() {
		var row model.UserResultRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.TestID, &row.Score, &row.MaxScore,
			&row.StartedAt, &row.CompletedAt, &row.CreatedAt, &row.TestTitle); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ListByTest returns every attempt on a test joined with the user, in the
// order rows go into the Excel export.
func (r *ResultRepository) ListByTest(ctx context.Context, testID int64) ([]model.ResultRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.id, r.user_id, r.test_id, r.score, r.max_score, r.started_at, r.completed_at, r.created_at,
			u.name, u.phone
		 FROM test_results r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.test_id = $1
		 ORDER BY r.started_at ASC`, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.ResultRow
	for rows.Next() {
		var row model.ResultRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.TestID, &row.Score, &row.MaxScore,
			&row.StartedAt, &row.CompletedAt, &row.CreatedAt, &row.UserName, &row.Phone); err != nil {
			return nil, err
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StatsByTest aggregates attempt counts and the average completed score.
func (r *ResultRepository) StatsByTest(ctx context.Context, testID int64) (*model.TestStats, error) {
	var s model.TestStats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(completed_at),
			COALESCE(AVG(score) FILTER (WHERE completed_at IS NOT NULL), 0)
		 FROM test_results WHERE test_id = $1`, testID).
		Scan(&s.Attempts, &s.Completed, &s.AverageScore)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
