package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/arco-app/backend/internal/api/http"
	"github.com/arco-app/backend/internal/cache"
	"github.com/arco-app/backend/internal/config"
	"github.com/arco-app/backend/internal/db"
	"github.com/arco-app/backend/internal/queue/client"
	"github.com/arco-app/backend/internal/repository"
	"github.com/arco-app/backend/internal/server"
	"github.com/arco-app/backend/internal/service"
	"github.com/arco-app/backend/pkg/auth"
	"github.com/arco-app/backend/pkg/hash"
	"github.com/arco-app/backend/pkg/logger"
	"github.com/arco-app/backend/pkg/signer"

	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	logger.Init(cfg.Env)
	defer logger.Sync()

	logger.Info("starting backend api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	if err := db.RunMigrations(context.Background(), dbMySQL); err != nil {
		logger.Error("migrations failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("migrations applied")

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

	queueClient := client.New(cfg.Cache)
	defer func() {
		if err := queueClient.Close(); err != nil {
			logger.Error("error when closing queue client", zap.Error(err))
		}
	}()

	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		return
	}

	tokenSigner := signer.New(cfg.Auth.SecretKey)

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		Signer:       tokenSigner,
		Queue:        queueClient,
		Redis:        redisClient,
		Repos:        repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	logger.Info("app stopped")
}
