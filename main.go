package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdallen/portfolio/backend/internal/config"
	"github.com/pdallen/portfolio/backend/internal/database"
	"github.com/pdallen/portfolio/backend/internal/portfolio/repository"
	"github.com/pdallen/portfolio/backend/internal/portfolio/service"
	"github.com/pdallen/portfolio/backend/pkg/logger"
	"github.com/pdallen/portfolio/backend/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// LOG_LEVEL may also come from .env, so re-apply it once config is loaded
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	logger.InitFile(cfg.Log.File)
	defer func() { _ = logger.Sync() }()
	logger.Infof("config loaded: db=%s env=%s log_level=%s", cfg.MongoDB.Database, cfg.Server.Environment, logger.LevelString())

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("failed to create MongoDB client: %v", err)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logger.Warnf("MongoDB disconnect: %v", err)
		}
		logger.Infof("MongoDB connection closed")
	}()

	// an unreachable store is not fatal: reads degrade to default content
	db := client.Database(cfg.MongoDB.Database)
	if err := database.Ping(ctx, client, cfg.MongoDB.Timeout); err != nil {
		logger.Warnf("MongoDB not reachable at startup: %v", err)
	} else if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Warnf("failed to ensure indexes: %v", err)
	}

	store := repository.NewMongoRepo(db)
	svc := service.New(store)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	srv := &http.Server{
		Addr:        cfg.Server.Addr(),
		Handler:     newRouter(cfg, store, svc),
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	go func() {
		logger.Infof("Starting portfolio API on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server failed: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Warnf("graceful shutdown: %v", err)
	}
}
