package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/arco-app/backend/internal/cache"
	"github.com/arco-app/backend/internal/config"
	"github.com/arco-app/backend/internal/queue/asynqserver"
	"github.com/arco-app/backend/internal/worker"
	"github.com/arco-app/backend/pkg/email/smtp"
	"github.com/arco-app/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.Init(cfg.Env)
	defer logger.Sync()

	logger.Info("starting backend worker", zap.String("env", cfg.Env))

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Error("smtp sender creation failed", zap.Error(err))
		os.Exit(1)
	}

	workers := worker.NewWorkers(worker.Deps{
		Redis:         redisClient,
		EmailProvider: emailSender,
		Config:        cfg,
	})

	srv, mux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("error occurred while running asynq server", zap.Error(err))
			os.Exit(1)
		}
	}()
	logger.Info("worker started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	srv.Shutdown()
	logger.Info("worker stopped")
}
