package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/arco-app/backend/internal/db"
	"github.com/arco-app/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type accountRepository struct {
	db *sqlx.DB
}

func newAccountRepository(db *sqlx.DB) *accountRepository {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	const query = `
	SELECT id, email, username, password, confirmed, confirmed_on, user_profile_id, user_account_status_id, created_at, updated_at
	FROM user_account WHERE email = ?;
	`
	var account domain.UserAccount
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user_account by email failed: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) GetOneByID(ctx context.Context, id int64) (*domain.UserAccount, error) {
	const query = `
	SELECT id, email, username, password, confirmed, confirmed_on, user_profile_id, user_account_status_id, created_at, updated_at
	FROM user_account WHERE id = ?;
	`
	var account domain.UserAccount
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user_account by id failed: %w", err)
	}

	return &account, nil
}

// Create inserts profile, status and account in a single transaction.
func (r *accountRepository) Create(ctx context.Context, profile *domain.UserProfile, status *domain.UserAccountStatus, account *domain.UserAccount) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin account create tx failed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	profile.ID, err = insertReturningID(ctx, tx,
		`INSERT INTO user_profile (email, first_name, last_name, accept_tos) VALUES (?, ?, ?, ?);`,
		profile.Email, profile.FirstName, profile.LastName, profile.AcceptTOS,
	)
	if err != nil {
		return fmt.Errorf("db insert user_profile: %w", err)
	}

	status.ID, err = insertReturningID(ctx, tx,
		`INSERT INTO user_account_status (code, name) VALUES (?, ?);`,
		status.Code, status.Name,
	)
	if err != nil {
		return fmt.Errorf("db insert user_account_status: %w", err)
	}

	account.UserProfileID = profile.ID
	account.UserAccountStatusID = status.ID

	account.ID, err = insertReturningID(ctx, tx,
		`INSERT INTO user_account (email, username, password, user_profile_id, user_account_status_id) VALUES (?, ?, ?, ?, ?);`,
		account.Email, account.Username, account.Password, account.UserProfileID, account.UserAccountStatusID,
	)
	if err != nil {
		return fmt.Errorf("db insert user_account: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit account create tx failed: %w", err)
	}

	return nil
}

func (r *accountRepository) Confirm(ctx context.Context, email string, confirmedOn time.Time) error {
	const query = `
	UPDATE user_account SET confirmed = TRUE, confirmed_on = ? WHERE email = ?;
	`
	res, err := r.db.ExecContext(ctx, query, confirmedOn, email)
	if err != nil {
		return fmt.Errorf("db confirm user_account: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, email string, passwordHash string, confirmedOn time.Time) error {
	const query = `
	UPDATE user_account SET password = ?, confirmed = TRUE, confirmed_on = ? WHERE email = ?;
	`
	res, err := r.db.ExecContext(ctx, query, passwordHash, confirmedOn, email)
	if err != nil {
		return fmt.Errorf("db update user_account password: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func insertReturningID(ctx context.Context, tx *sqlx.Tx, query string, args ...interface{}) (int64, error) {
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return 0, domain.ErrDuplicateEntry
		}
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}

	return id, nil
}
