package repository

import (
	"context"
	"time"

	"github.com/arco-app/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Accounts        Accounts
	RefreshSessions RefreshSessions
	Persons         Persons
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Accounts:        newAccountRepository(db),
		RefreshSessions: newRefreshSessionRepository(db),
		Persons:         newPersonRepository(db),
	}
}

type Accounts interface {
	GetByEmail(ctx context.Context, email string) (*domain.UserAccount, error)
	GetOneByID(ctx context.Context, id int64) (*domain.UserAccount, error)
	// Create inserts the profile, status and account as one transaction; a
	// partially created account is never visible. The inserted rows get
	// their generated ids assigned back.
	Create(ctx context.Context, profile *domain.UserProfile, status *domain.UserAccountStatus, account *domain.UserAccount) error
	Confirm(ctx context.Context, email string, confirmedOn time.Time) error
	UpdatePassword(ctx context.Context, email string, passwordHash string, confirmedOn time.Time) error
}

type RefreshSessions interface {
	Create(ctx context.Context, session *domain.RefreshSession) error
	DeleteByUser(ctx context.Context, userID int64) error
}

type Persons interface {
	GetAll(ctx context.Context) ([]domain.Person, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Person, error)
	Create(ctx context.Context, person *domain.Person) error
}
