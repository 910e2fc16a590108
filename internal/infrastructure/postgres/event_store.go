package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
)

// systemContextID is the host context id of the whole site.
const systemContextID = 1

// EventStore implements repository.EventStore on the host standard log
// store table.
type EventStore struct {
	db DBTX
}

// NewEventStore creates a new EventStore instance.
func NewEventStore(db DBTX) *EventStore {
	return &EventStore{db: db}
}

// Save appends the event to the log store.
func (s *EventStore) Save(ctx context.Context, event model.Event) error {
	const query = `
		INSERT INTO logstore_standard_log
			(eventname, component, action, target, crud, edulevel, contextid, other, timecreated, origin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	other, err := json.Marshal(event.Other)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	target, action := splitEventName(event.Name)

	_, err = s.db.Exec(ctx, query,
		qualifiedEventName(event),
		event.Component,
		action,
		target,
		event.CRUD,
		event.EduLevel,
		systemContextID,
		string(other),
		event.TimeCreated.Unix(),
		"ws",
	)
	if err != nil {
		return fmt.Errorf("failed to save event %s: %w", event.ID, err)
	}

	return nil
}

// qualifiedEventName returns the name under which the host identifies the
// event class, e.g. \repository_openveo\event\connection_failed.
func qualifiedEventName(event model.Event) string {
	return `\` + event.Component + `\event\` + event.Name.String()
}

// splitEventName splits "getting_videos_failed" into the target
// "getting_videos" and the action "failed".
func splitEventName(name model.EventName) (target, action string) {
	s := name.String()
	i := strings.LastIndex(s, "_")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// Compile-time verification that EventStore implements repository.EventStore.
var _ repository.EventStore = (*EventStore)(nil)
