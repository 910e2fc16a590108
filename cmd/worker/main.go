package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hszk-dev/openveo-repository/internal/config"
	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/postgres"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/queue"
	"github.com/hszk-dev/openveo-repository/internal/usecase"
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
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if !cfg.RabbitMQ.Enabled {
		return errors.New("RabbitMQ is disabled, events are only written to the API log")
	}

	pgClient, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	eventLog := usecase.NewEventLogService(postgres.NewEventStore(pgClient.Pool()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// in-flight events
	var wg sync.WaitGroup

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting worker, consuming events")
		err := queueClient.ConsumeEvents(ctx, func(event model.Event) error {
			wg.Add(1)
			defer wg.Done()

			err := eventLog.Record(ctx, event)
			if errors.Is(err, usecase.ErrForeignEvent) {
				logger.Warn("dropping foreign event",
					slog.String("event_id", event.ID.String()),
					slog.String("component", event.Component),
				)
				return nil
			}
			return err
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

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("all in-flight events recorded")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, some events may not have been recorded")
	}

	logger.Info("worker stopped")
	return nil
}
