package repository

import (
	"context"
	"fmt"

	"github.com/arco-app/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type refreshSessionRepository struct {
	db *sqlx.DB
}

func newRefreshSessionRepository(db *sqlx.DB) *refreshSessionRepository {
	return &refreshSessionRepository{
		db: db,
	}
}

func (r *refreshSessionRepository) Create(ctx context.Context, session *domain.RefreshSession) error {
	const query = `
	INSERT INTO refresh_session (user_id, refresh_token, user_agent, ip, expires_in)
	VALUES (?, ?, ?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, query, session.UserID, session.RefreshToken, session.UserAgent, session.IP, session.ExpiresIn)
	if err != nil {
		return fmt.Errorf("db insert refresh_session: %w", err)
	}

	session.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id failed: %w", err)
	}

	return nil
}

func (r *refreshSessionRepository) DeleteByUser(ctx context.Context, userID int64) error {
	const query = `
	DELETE FROM refresh_session WHERE user_id = ?;
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db delete refresh_session by user: %w", err)
	}

	return nil
}
