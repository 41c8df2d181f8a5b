package asynqserver

import (
	"github.com/arco-app/backend/internal/config"
	"github.com/arco-app/backend/internal/queue"
	"github.com/arco-app/backend/internal/queue/processor"
	"github.com/arco-app/backend/internal/queue/task"
	"github.com/arco-app/backend/internal/worker"

	"github.com/hibiken/asynq"
)

func New(cfg config.Cache, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)
	srv := asynq.NewServer(
		queue.RedisOptions(cfg),
		asynq.Config{
			Concurrency: 10,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
		},
	)

	return srv, mux
}

func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.SendEmailTaskName, processor.NewSendEmailProcessor(workers))
	mux.Handle(task.FetchNewsTaskName, processor.NewFetchNewsProcessor(workers))
	queues := map[string]int{
		task.SendEmailQueueName: 2,
		task.FetchNewsQueueName: 1,
	}
	return mux, queues
}
