package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RUSLANBALTABAEV/EduTesterBot/internal/model"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, telegram_id, name, age, phone, photo_id, document_id, language, is_active, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.TelegramID, &u.Name, &u.Age, &u.Phone,
		&u.PhotoID, &u.DocumentID, &u.Language, &u.IsActive, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (telegram_id, name, age, phone, photo_id, document_id, language)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, is_active, created_at`,
		u.TelegramID, u.Name, u.Age, u.Phone, u.PhotoID, u.DocumentID, u.Language).
		Scan(&u.ID, &u.IsActive, &u.CreatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID))
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = $1`, phone))
}

// BindTelegramID attaches a Telegram account to an existing user row. Used
// by phone login after the account was registered elsewhere or re-linked.
func (r *UserRepository) BindTelegramID(ctx context.Context, userID, telegramID int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET telegram_id = $1 WHERE id = $2`, telegramID, userID)
	return err
}

// UnbindTelegramID detaches the Telegram account on logout. The row and its
// results stay, so logging back in by phone restores everything.
func (r *UserRepository) UnbindTelegramID(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET telegram_id = NULL WHERE id = $1`, userID)
	return err
}

func (r *UserRepository) SetLanguage(ctx context.Context, userID int64, lang string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET language = $1 WHERE id = $2`, lang, userID)
	return err
}

func (r *UserRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET is_active = $1 WHERE id = $2`, active, userID)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	return err
}

// DeleteAll wipes every user row. Results go with them via ON DELETE
// CASCADE. Returns the number of rows removed.
func (r *UserRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *UserRepository) listBy(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.TelegramID, &u.Name, &u.Age, &u.Phone,
			&u.PhotoID, &u.DocumentID, &u.Language, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	return r.listBy(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
}

// ListPending returns unverified registrations awaiting admin review.
func (r *UserRepository) ListPending(ctx context.Context) ([]model.User, error) {
	return r.listBy(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_active = FALSE ORDER BY created_at ASC`)
}

// ListActiveWithTelegram returns verified users reachable by the bot, for
// broadcast-style notifications.
func (r *UserRepository) ListActiveWithTelegram(ctx context.Context) ([]model.User, error) {
	return r.listBy(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE is_active = TRUE AND telegram_id IS NOT NULL
		 ORDER BY created_at ASC`)
}
