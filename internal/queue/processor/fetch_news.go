package processor

import (
	"context"
	"fmt"

	"github.com/arco-app/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type fetchNewsProcessor struct {
	workers *worker.Workers
}

func NewFetchNewsProcessor(workers *worker.Workers) *fetchNewsProcessor {
	return &fetchNewsProcessor{
		workers: workers,
	}
}

func (p *fetchNewsProcessor) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	if err := p.workers.NewsFetcher.FetchTopNews(ctx); err != nil {
		return fmt.Errorf("fetch top news failed: %w", err)
	}

	return nil
}
