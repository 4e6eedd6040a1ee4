package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/config"
	"github.com/meshfit/meshfit-backend/internal/auth"
	"github.com/meshfit/meshfit-backend/internal/bootstrap"
	"github.com/meshfit/meshfit-backend/internal/cronjob"
	"github.com/meshfit/meshfit-backend/internal/metrics"
	"github.com/meshfit/meshfit-backend/internal/storage/images"
	"github.com/meshfit/meshfit-backend/internal/storage/postgres"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/audit"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := bootstrap.NewLogger(&cfg.App)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlDB, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(ctx, sqlDB); err != nil {
		return err
	}

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database), MaxConns: 10})
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		logger.Info("REDIS_ADDR not set; outfit generation is uncached")
	}

	reg := metrics.NewRegistry()
	deps := bootstrap.RouterDeps{
		Config:  cfg,
		Logger:  logger,
		Pool:    pool,
		SQL:     sqlDB,
		Metrics: reg,
		Redis:   rdb,
	}

	if cfg.Firebase.CredentialsPath != "" {
		client, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
		if err != nil {
			return err
		}
		deps.Verifier = client
	} else if cfg.IsProduction() {
		return errors.New("FIREBASE_CREDENTIALS_PATH is required in production")
	}

	if cfg.Storage.Bucket != "" {
		store, err := images.NewS3Store(ctx, &cfg.Storage)
		if err != nil {
			return err
		}
		deps.Images = store
	} else {
		logger.Info("IMAGES_BUCKET not set; garment image uploads are disabled")
	}

	scheduler := cronjob.NewScheduler(logger)
	if cfg.Audit.Schedule != "" {
		auditor := audit.NewAuditor(repository.NewOutfitRepository(sqlDB), repository.NewLinkRepository(sqlDB), reg, logger)
		if err := scheduler.ScheduleAudit(cfg.Audit.Schedule, auditor); err != nil {
			return err
		}
	}
	scheduler.Start()

	bootstrap.SetGinMode(cfg.App.Environment)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           bootstrap.BuildRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	scheduler.Stop(shutdownCtx)
	return srv.Shutdown(shutdownCtx)
}
