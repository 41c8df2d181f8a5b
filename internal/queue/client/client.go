// Package client wraps the asynq enqueue client. It is constructed in main
// and injected into the services that dispatch background work.
package client

import (
	"context"

	"github.com/arco-app/backend/internal/config"
	"github.com/arco-app/backend/internal/queue"

	"github.com/hibiken/asynq"
)

type Client struct {
	client *asynq.Client
}

func New(cfg config.Cache) *Client {
	return &Client{
		client: asynq.NewClient(queue.RedisOptions(cfg)),
	}
}

func (c *Client) Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	return c.client.EnqueueContext(ctx, task, opts...)
}

func (c *Client) Close() error {
	return c.client.Close()
}
