package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/openveo-repository/internal/api/handler"
	"github.com/hszk-dev/openveo-repository/internal/api/middleware"
	"github.com/hszk-dev/openveo-repository/internal/config"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/cache"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/eventlog"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/openveo"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/queue"
	"github.com/hszk-dev/openveo-repository/internal/lang"
	"github.com/hszk-dev/openveo-repository/internal/usecase"
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
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	client, err := openveo.NewClient(openveo.ClientConfig{
		BaseURL:         cfg.OpenVeo.WebServiceURL,
		ClientID:        cfg.OpenVeo.ClientID,
		ClientSecret:    cfg.OpenVeo.ClientSecret,
		CertificateFile: cfg.OpenVeo.CertificateFile,
		Timeout:         cfg.OpenVeo.RequestTimeout,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			logger.Error(lang.English().String(lang.ErrorNotConfigured), slog.String("error", err.Error()))
		}
		return fmt.Errorf("failed to create OpenVeo client: %w", err)
	}

	checks := map[string]handler.HealthCheck{}
	var catalog repository.VideoCatalog = client

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		logger.Info("connected to Redis")

		catalog = usecase.NewCachedCatalog(
			client,
			cache.NewRedisVideoCache(redisClient),
			usecase.CachedCatalogConfig{CacheTTL: cfg.Redis.CacheTTL},
		)
		checks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	var events repository.EventPublisher = eventlog.NewLogPublisher(logger)
	if cfg.RabbitMQ.Enabled {
		queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer queueClient.Close()
		logger.Info("connected to RabbitMQ")

		events = queueClient
		checks["rabbitmq"] = queueClient.Ping
	}

	svc, err := usecase.NewReferenceService(catalog, events, usecase.ReferenceServiceConfig{
		CDNURL:              cfg.OpenVeo.CDNURL,
		SupportedExtensions: cfg.OpenVeo.SupportedExtensions,
	})
	if err != nil {
		return fmt.Errorf("failed to create reference service: %w", err)
	}

	r := setupRouter(logger, handler.NewHealthHandler(checks), handler.NewRepositoryHandler(svc))

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

func setupRouter(logger *slog.Logger, health *handler.HealthHandler, repo *handler.RepositoryHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Language)

	r.Get("/health", health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", repo.Routes)

	return r
}
