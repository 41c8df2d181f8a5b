package service

import (
	"context"
	"time"

	"github.com/arco-app/backend/internal/config"
	"github.com/arco-app/backend/internal/domain"
	"github.com/arco-app/backend/internal/repository"
	"github.com/arco-app/backend/pkg/auth"
	"github.com/arco-app/backend/pkg/hash"
	"github.com/arco-app/backend/pkg/signer"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

type Services struct {
	Auth    Auth
	News    News
	Persons Persons
}

// TaskEnqueuer dispatches background work onto the durable queue.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	Signer       *signer.Signer
	Queue        TaskEnqueuer
	Redis        redis.UniversalClient
	Repos        *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Auth: newAuthService(deps.Repos.Accounts,
			deps.Repos.RefreshSessions,
			deps.Hasher,
			deps.TokenManager,
			deps.Signer,
			deps.Queue,
			deps.Config.Auth,
			deps.Config.App,
		),
		News:    newNewsService(deps.Queue, deps.Redis),
		Persons: newPersonService(deps.Repos.Persons),
	}
}

// Tokens is an authenticated session: a short-lived JWT plus a persisted
// refresh token.
type Tokens struct {
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken uuid.UUID
	RefreshTTL   time.Duration
}

type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Username  string
	Password  string
}

type Auth interface {
	Register(ctx context.Context, input RegisterInput, userAgent string, userIP string) (*Tokens, error)
	Login(ctx context.Context, email string, password string, userAgent string, userIP string) (*Tokens, error)
	Logout(ctx context.Context, userID int64) error
	ConfirmEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetToken(token string) (string, error)
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

type News interface {
	TopNews(ctx context.Context) ([]string, error)
}

type Persons interface {
	GetAll(ctx context.Context) ([]domain.Person, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Person, error)
	Create(ctx context.Context, person *domain.Person) error
}
