package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// CreateWithOptions inserts a question and its options in one transaction
// so a half-written question never becomes visible to a starting session.
func (r *QuestionRepository) CreateWithOptions(ctx context.Context, q *model.Question, options []model.Option) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO questions (test_id, text, type, points, order_num)
		 VALUES ($1, $2, $3, $4,
			COALESCE((SELECT MAX(order_num) + 1 FROM questions WHERE test_id = $1), 1))
		 RETURNING id, order_num`,
		q.TestID, q.Text, q.Type, q.Points).Scan(&q.ID, &q.OrderNum)
	if err != nil {
		return err
	}

	for i := range options {
		options[i].QuestionID = q.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO options (question_id, text, is_correct) VALUES ($1, $2, $3) RETURNING id`,
			q.ID, options[i].Text, options[i].IsCorrect).Scan(&options[i].ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*model.Question, error) {
	var q model.Question
	err := r.pool.QueryRow(ctx,
		`SELECT id, test_id, text, type, points, order_num FROM questions WHERE id = $1`, id).
		Scan(&q.ID, &q.TestID, &q.Text, &q.Type, &q.Points, &q.OrderNum)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetByTest returns the test's questions in presentation order.
func (r *QuestionRepository) GetByTest(ctx context.Context, testID int64) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, test_id, text, type, points, order_num FROM questions
		 WHERE test_id = $1 ORDER BY order_num ASC, id ASC`, testID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.TestID, &q.Text, &q.Type, &q.Points, &q.OrderNum); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *QuestionRepository) GetOptions(ctx context.Context, questionID int64) ([]model.Option, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question_id, text, is_correct FROM options
		 WHERE question_id = $1 ORDER BY id ASC`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []model.Option
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.Text, &o.IsCorrect); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

// Delete removes the question and its options via cascade.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	return err
}
