// Command wowa-server starts the wowa WOD engine HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gaegulzip/wowa/internal/api"
	"github.com/gaegulzip/wowa/internal/config"
	"github.com/gaegulzip/wowa/internal/migrate"
	"github.com/gaegulzip/wowa/internal/repository/postgres"
	"github.com/gaegulzip/wowa/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main parses configuration, runs migrations, and starts the HTTP server.
func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
	)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if cfg.Database.DSN == "" {
		logger.Fatal("missing database DSN (database.dsn / WOWA_DATABASE_DSN)")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("missing jwt secret (jwt.secret / WOWA_JWT_SECRET)")
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.Database.DSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	db, err := postgres.New(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	wodRepo := postgres.NewWodRepo(db)
	proposalRepo := postgres.NewProposalRepo(db)
	selectionRepo := postgres.NewSelectionRepo(db)

	// Services
	wodSvc := service.NewWodService(wodRepo, proposalRepo, logger)
	proposalSvc := service.NewProposalService(proposalRepo, wodRepo, logger)
	selectionSvc := service.NewSelectionService(selectionRepo, wodRepo)

	router := api.NewRouter(logger, cfg.JWT.Secret, cfg.CORS.AllowOrigins, wodSvc, proposalSvc, selectionSvc)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Address))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
