package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hszk-dev/openveo-repository/internal/config"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/eventlog"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/openveo"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/postgres"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/queue"
	"github.com/hszk-dev/openveo-repository/internal/usecase"
)

// EnvServiceFactory builds services from the environment configuration.
type EnvServiceFactory struct {
	logger *slog.Logger
}

// NewEnvServiceFactory creates a factory logging through logger.
func NewEnvServiceFactory(logger *slog.Logger) *EnvServiceFactory {
	return &EnvServiceFactory{logger: logger}
}

// ReferenceService builds a ReferenceService querying the web service
// directly. Events go to RabbitMQ when enabled, to the log otherwise.
func (f *EnvServiceFactory) ReferenceService(ctx context.Context) (usecase.ReferenceService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	client, err := openveo.NewClient(openveo.ClientConfig{
		BaseURL:         cfg.OpenVeo.WebServiceURL,
		ClientID:        cfg.OpenVeo.ClientID,
		ClientSecret:    cfg.OpenVeo.ClientSecret,
		CertificateFile: cfg.OpenVeo.CertificateFile,
		Timeout:         cfg.OpenVeo.RequestTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OpenVeo client: %w", err)
	}

	cleanup := func() {}
	var events repository.EventPublisher = eventlog.NewLogPublisher(f.logger)
	if cfg.RabbitMQ.Enabled {
		queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
		if err != nil {
			f.logger.Warn("RabbitMQ unavailable, events are logged only", slog.String("error", err.Error()))
		} else {
			events = queueClient
			cleanup = func() { _ = queueClient.Close() }
		}
	}

	svc, err := usecase.NewReferenceService(client, events, usecase.ReferenceServiceConfig{
		CDNURL:              cfg.OpenVeo.CDNURL,
		SupportedExtensions: cfg.OpenVeo.SupportedExtensions,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create reference service: %w", err)
	}

	return svc, cleanup, nil
}

// UninstallService builds an UninstallService on the host database.
func (f *EnvServiceFactory) UninstallService(ctx context.Context) (usecase.UninstallService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	pgClient, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	svc := usecase.NewUninstallService(postgres.NewFileReferenceRepository(pgClient.Pool()))
	return svc, pgClient.Close, nil
}
