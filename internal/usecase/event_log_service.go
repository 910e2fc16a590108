package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
)

// ErrForeignEvent is returned for events not emitted by this repository.
var ErrForeignEvent = errors.New("event does not belong to the repository")

// EventLogService records diagnostic events in the host log store.
type EventLogService interface {
	// Record persists one event. Foreign events are rejected with
	// ErrForeignEvent and never stored.
	Record(ctx context.Context, event model.Event) error
}

type eventLogService struct {
	store repository.EventStore
}

// NewEventLogService creates a new EventLogService instance.
func NewEventLogService(store repository.EventStore) EventLogService {
	return &eventLogService{store: store}
}

func (s *eventLogService) Record(ctx context.Context, event model.Event) error {
	if event.Component != model.Component {
		return fmt.Errorf("%w: component %q", ErrForeignEvent, event.Component)
	}

	if err := s.store.Save(ctx, event); err != nil {
		return fmt.Errorf("save event: %w", err)
	}

	slog.Info("event recorded",
		"event_id", event.ID,
		"event", event.Name,
		"description", event.Description(),
	)
	return nil
}
