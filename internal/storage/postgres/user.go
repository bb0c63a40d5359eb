package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"post_watcher/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// Ensure creates the user on first contact or refreshes the profile fields
// on subsequent ones, returning the stored row either way.
func (s *UserStore) Ensure(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (tg_id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tg_id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = NOW()
		RETURNING id, tg_id, username, first_name, last_name, is_admin, created_at, updated_at`

	var stored domain.User
	err := s.db.GetContext(ctx, &stored, query,
		user.TgID,
		user.Username,
		user.FirstName,
		user.LastName,
	)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Get returns nil without error when the user is unknown.
func (s *UserStore) Get(ctx context.Context, tgID int64) (*domain.User, error) {
	query := `
		SELECT id, tg_id, username, first_name, last_name, is_admin, created_at, updated_at
		FROM users
		WHERE tg_id = $1`

	var user domain.User
	err := s.db.GetContext(ctx, &user, query, tgID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) SetAdmin(ctx context.Context, tgID int64, isAdmin bool) error {
	query := `UPDATE users SET is_admin = $2, updated_at = NOW() WHERE tg_id = $1`

	_, err := s.db.ExecContext(ctx, query, tgID, isAdmin)
	return err
}
