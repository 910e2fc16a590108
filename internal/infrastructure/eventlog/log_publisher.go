// Package eventlog publishes diagnostic events to the structured log when
// no message broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
)

// LogPublisher writes events as warning records.
type LogPublisher struct {
	logger *slog.Logger
}

// Compile-time verification that LogPublisher implements repository.EventPublisher.
var _ repository.EventPublisher = (*LogPublisher)(nil)

// NewLogPublisher creates a LogPublisher. A nil logger means slog.Default().
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish never fails.
func (p *LogPublisher) Publish(ctx context.Context, event model.Event) error {
	attrs := []slog.Attr{
		slog.String("event_id", event.ID.String()),
		slog.String("event", event.Name.String()),
		slog.String("component", event.Component),
		slog.String("crud", event.CRUD),
		slog.Int("edulevel", event.EduLevel),
		slog.Time("time_created", event.TimeCreated),
		slog.Any("other", event.Other),
	}

	p.logger.LogAttrs(ctx, slog.LevelWarn, event.Description(), attrs...)
	return nil
}
