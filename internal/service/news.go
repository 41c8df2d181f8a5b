package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arco-app/backend/internal/queue/task"
	"github.com/arco-app/backend/internal/worker"
	"github.com/arco-app/backend/pkg/logger"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type newsService struct {
	queue TaskEnqueuer
	redis redis.UniversalClient
}

func newNewsService(queue TaskEnqueuer, redisClient redis.UniversalClient) *newsService {
	return &newsService{
		queue: queue,
		redis: redisClient,
	}
}

// TopNews kicks off a background refresh and returns whatever the cache
// currently holds; the first call after a cold start returns an empty list
// while the fetch is pending.
func (s *newsService) TopNews(ctx context.Context) ([]string, error) {
	if _, err := s.queue.Enqueue(ctx, task.NewFetchNewsTask()); err != nil &&
		!errors.Is(err, asynq.ErrDuplicateTask) && !errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Warn("enqueue fetch news task failed", zap.Error(err))
	}

	data, err := s.redis.Get(ctx, worker.TopNewsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read news cache failed: %w", err)
	}

	var news []string
	if err := json.Unmarshal(data, &news); err != nil {
		return nil, fmt.Errorf("unmarshal news cache failed: %w", err)
	}

	return news, nil
}
