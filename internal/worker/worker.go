package worker

import (
	"context"

	"github.com/arco-app/backend/internal/config"
	emailProvider "github.com/arco-app/backend/pkg/email"

	"github.com/redis/go-redis/v9"
)

type Workers struct {
	EmailSender EmailSender
	NewsFetcher NewsFetcher
}

type Deps struct {
	Redis         redis.UniversalClient
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendConfirmationEmail(ctx context.Context, email string, link string) error
	SendPasswordResetEmail(ctx context.Context, email string, link string) error
}

type NewsFetcher interface {
	FetchTopNews(ctx context.Context) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
		NewsFetcher: newNewsFetcher(deps.Redis, deps.Config.News),
	}
}
