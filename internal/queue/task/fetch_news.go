package task

import (
	"time"

	"github.com/hibiken/asynq"
)

const (
	FetchNewsTaskName  = "fetchNewsTask"
	FetchNewsQueueName = "fetchNewsQueue"
)

// NewFetchNewsTask builds the news refresh task. Unique collapses bursts of
// blog requests into a single pending fetch.
func NewFetchNewsTask() *asynq.Task {
	return asynq.NewTask(
		FetchNewsTaskName,
		nil,
		asynq.MaxRetry(3),
		asynq.Queue(FetchNewsQueueName),
		asynq.Unique(time.Minute),
	)
}
