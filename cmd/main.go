package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	httpadapter "campsim/internal/adapter/http"
	"campsim/internal/adapter/memory"
	"campsim/internal/adapter/mlservice"
	"campsim/internal/adapter/postgres"
	"campsim/internal/adapter/rediscache"
	"campsim/internal/adapter/usecase"
	"campsim/internal/config"
	"campsim/internal/core/port"
	"campsim/internal/db"
)

// main is the entry point of the campaign simulation service. It loads
// configuration, picks PostgreSQL or in-memory persistence, wires the
// optional results cache and remote ML client, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down
// the server.
func main() {
	// .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.CampaignRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Psql.SeedDemo {
			if err = db.Seed(ctx, pool); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			}
		}
		repo = postgres.NewCampaignRepository(pool)
		logger.Info("using postgres persistence")
	} else {
		repo = memory.NewCampaignRepository()
		logger.Info("using in-memory persistence")
	}

	var cache port.ResultsCache
	if cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		cache = rediscache.NewResultsCache(client, cfg.Redis.TTL)
		logger.Info("results cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	var (
		optimizer port.Optimizer
		scorer    port.Scorer
	)
	if cfg.ML.Enabled() {
		client := mlservice.NewClient(cfg.ML)
		optimizer = client
		scorer = client
		logger.Info("remote ml service configured", slog.String("url", cfg.ML.BaseURL))
	}

	campaigns := usecase.NewCampaignUseCase(repo, cache, optimizer)
	creatives := usecase.NewCreativeUseCase(repo, scorer)

	handler := httpadapter.NewHandler(campaigns, creatives, logger, cfg.HTTP.AllowedOrigins)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
