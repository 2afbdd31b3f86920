package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/catalog/internal/config"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/infrastructure/cache"
	"github.com/hszk-dev/catalog/internal/infrastructure/postgres"
	"github.com/hszk-dev/catalog/internal/infrastructure/queue"
	"github.com/hszk-dev/catalog/internal/messagebus"
	"github.com/hszk-dev/catalog/internal/usecase"
	"github.com/hszk-dev/catalog/internal/worker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	pgCfg := postgres.DefaultClientConfig(cfg.Database.DSN())
	pgCfg.MaxConns = cfg.Database.MaxConns
	pgCfg.MinConns = cfg.Database.MinConns
	pgClient, err := postgres.NewClient(ctx, pgCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	queueCfg := queue.DefaultClientConfig(cfg.RabbitMQ.URL())
	queueCfg.Exchange = cfg.RabbitMQ.Exchange
	queueCfg.PublishQueue = cfg.RabbitMQ.PublishQueue
	queueCfg.ConsumeQueue = cfg.RabbitMQ.ConsumeQueue
	queueCfg.Prefetch = cfg.RabbitMQ.Prefetch

	queueClient, err := queue.NewClient(ctx, queueCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	// Results only update media state; uploads never happen here, so no object storage.
	repos := pgClient.Repositories()
	var videoService usecase.VideoService = usecase.NewVideoService(usecase.VideoServiceDeps{
		Videos:      repos.Videos,
		Categories:  repos.Categories,
		Genres:      repos.Genres,
		CastMembers: repos.CastMembers,
		Bus:         messagebus.New(logger),
	}, usecase.Config{PageSize: cfg.Pagination.PageSize})

	// Redis is only needed to invalidate the API's cached projections.
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("connected to Redis")

		videoService = usecase.NewCachedVideoService(
			videoService,
			cache.NewRedisVideoCache(redisClient),
			usecase.CachedVideoServiceConfig{CacheTTL: cfg.Redis.CacheTTL},
		)
	}

	conversions := worker.NewConversionHandler(videoService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// WaitGroup to track in-flight results
	var wg sync.WaitGroup

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting worker, consuming conversion results",
			slog.String("queue", queueCfg.ConsumeQueue),
		)
		err := queueClient.ConsumeConversionResults(ctx, func(result repository.ConversionResult) error {
			wg.Add(1)
			defer wg.Done()

			// Detached so an in-flight update finishes during shutdown.
			return conversions.Handle(context.WithoutCancel(ctx), result)
		})
		if err != nil && ctx.Err() == nil {
			errCh <- fmt.Errorf("consumer error: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down worker", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Worker.ShutdownTimeout)
	defer shutdownCancel()

	// Stop consuming new messages
	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("all in-flight results processed")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, some results may not have been processed")
	}

	logger.Info("worker stopped")
	return nil
}
