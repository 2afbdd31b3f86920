package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/catalog/internal/api/handler"
	"github.com/hszk-dev/catalog/internal/api/middleware"
	"github.com/hszk-dev/catalog/internal/auth"
	"github.com/hszk-dev/catalog/internal/config"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/infrastructure/cache"
	"github.com/hszk-dev/catalog/internal/infrastructure/kafka"
	"github.com/hszk-dev/catalog/internal/infrastructure/postgres"
	"github.com/hszk-dev/catalog/internal/infrastructure/queue"
	"github.com/hszk-dev/catalog/internal/infrastructure/storage"
	"github.com/hszk-dev/catalog/internal/messagebus"
	"github.com/hszk-dev/catalog/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(cfg.Database.DSN(), logger); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	pgCfg := postgres.DefaultClientConfig(cfg.Database.DSN())
	pgCfg.MaxConns = cfg.Database.MaxConns
	pgCfg.MinConns = cfg.Database.MinConns
	pgClient, err := postgres.NewClient(ctx, pgCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	storageClient, err := storage.NewClient(ctx, storage.ClientConfig{
		Endpoint:     cfg.MinIO.Endpoint,
		AccessKey:    cfg.MinIO.AccessKey,
		SecretKey:    cfg.MinIO.SecretKey,
		Bucket:       cfg.MinIO.Bucket,
		UseSSL:       cfg.MinIO.UseSSL,
		CreateBucket: cfg.MinIO.CreateBucket,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	logger.Info("connected to MinIO", slog.String("bucket", storageClient.Bucket()))

	dispatcher, closeDispatcher, err := newDispatcher(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeDispatcher(); err != nil {
			logger.Warn("failed to close event dispatcher", slog.String("error", err.Error()))
		}
	}()
	logger.Info("event dispatcher ready", slog.String("driver", cfg.Events.Driver))

	checks := map[string]handler.Pinger{
		"postgres": pgClient,
		"minio":    storageClient,
	}

	repos := pgClient.Repositories()
	svcCfg := usecase.Config{PageSize: cfg.Pagination.PageSize}
	bus := messagebus.NewDefault(dispatcher, logger)

	var videoService usecase.VideoService = usecase.NewVideoService(usecase.VideoServiceDeps{
		Videos:      repos.Videos,
		Categories:  repos.Categories,
		Genres:      repos.Genres,
		CastMembers: repos.CastMembers,
		Storage:     storageClient,
		Bus:         bus,
	}, svcCfg)

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

		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
		videoService = usecase.NewCachedVideoService(
			videoService,
			cache.NewRedisVideoCache(redisClient),
			usecase.CachedVideoServiceConfig{CacheTTL: cfg.Redis.CacheTTL},
		)
	}

	var authenticator middleware.Authenticator
	if cfg.Auth.Enabled {
		verifier, err := auth.NewVerifier(cfg.Auth.PublicKey, cfg.Auth.Issuer)
		if err != nil {
			return fmt.Errorf("failed to load auth public key: %w", err)
		}
		authenticator = verifier
	} else {
		logger.Warn("authentication disabled")
	}

	r := setupRouter(logger, routes{
		categories:  handler.NewCategoryHandler(usecase.NewCategoryService(repos.Categories, svcCfg)),
		castMembers: handler.NewCastMemberHandler(usecase.NewCastMemberService(repos.CastMembers, svcCfg)),
		genres:      handler.NewGenreHandler(usecase.NewGenreService(repos.Genres, repos.Categories, svcCfg)),
		videos:      handler.NewVideoHandler(videoService, cfg.Server.MaxUploadBytes),
		readiness:   handler.NewReadinessHandler(checks),
		auth:        middleware.RequireRole(authenticator, cfg.Auth.RequiredRole),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newDispatcher connects the integration event publisher selected by EVENTS_DRIVER.
func newDispatcher(ctx context.Context, cfg *config.Config) (repository.EventDispatcher, func() error, error) {
	switch cfg.Events.Driver {
	case config.EventsDriverKafka:
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		return producer, producer.Close, nil
	default:
		queueCfg := queue.DefaultClientConfig(cfg.RabbitMQ.URL())
		queueCfg.Exchange = cfg.RabbitMQ.Exchange
		queueCfg.PublishQueue = cfg.RabbitMQ.PublishQueue
		queueCfg.ConsumeQueue = cfg.RabbitMQ.ConsumeQueue
		queueCfg.Prefetch = cfg.RabbitMQ.Prefetch

		client, err := queue.NewClient(ctx, queueCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		return client, client.Close, nil
	}
}

type routes struct {
	categories  *handler.CategoryHandler
	castMembers *handler.CastMemberHandler
	genres      *handler.GenreHandler
	videos      *handler.VideoHandler
	readiness   *handler.ReadinessHandler
	auth        func(http.Handler) http.Handler
}

func setupRouter(logger *slog.Logger, h routes) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Get("/ready", h.readiness.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", h.categories.Create)
			r.Get("/", h.categories.List)
			r.Get("/{id}", h.categories.Get)
			r.Patch("/{id}", h.categories.Update)
			r.Delete("/{id}", h.categories.Delete)
		})

		r.Route("/cast_members", func(r chi.Router) {
			r.Post("/", h.castMembers.Create)
			r.Get("/", h.castMembers.List)
			r.Get("/{id}", h.castMembers.Get)
			r.Patch("/{id}", h.castMembers.Update)
			r.Delete("/{id}", h.castMembers.Delete)
		})

		r.Route("/genres", func(r chi.Router) {
			r.Post("/", h.genres.Create)
			r.Get("/", h.genres.List)
			r.Get("/{id}", h.genres.Get)
			r.Put("/{id}", h.genres.Update)
			r.Delete("/{id}", h.genres.Delete)
		})

		r.Route("/videos", func(r chi.Router) {
			r.Post("/", h.videos.Create)
			r.Get("/", h.videos.List)
			r.Get("/{id}", h.videos.Get)
			r.Put("/{id}", h.videos.Update)
			r.Delete("/{id}", h.videos.Delete)
			r.Post("/{id}/media", h.videos.UploadVideo)
			r.Post("/{id}/images/{type}", h.videos.UploadImage)
		})
	})

	return r
}
