package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Component is the name under which this repository reports events.
const Component = "repository_openveo"

// EventName identifies a diagnostic event.
type EventName string

const (
	EventConnectionFailed    EventName = "connection_failed"
	EventGettingVideosFailed EventName = "getting_videos_failed"
)

func (n EventName) String() string {
	return string(n)
}

const (
	CRUDRead       = "r"
	EduLevelOther  = 0
	otherMessage   = "message"
	otherCode      = "code"
	otherModule    = "module"
	otherReference = "reference"
)

// Event is a diagnostic event for operators. Events never change the
// outcome returned to the caller.
type Event struct {
	ID          uuid.UUID
	Name        EventName
	Component   string
	CRUD        string
	EduLevel    int
	Other       map[string]any
	TimeCreated time.Time
}

func newEvent(name EventName, other map[string]any) Event {
	return Event{
		ID:          uuid.New(),
		Name:        name,
		Component:   Component,
		CRUD:        CRUDRead,
		EduLevel:    EduLevelOther,
		Other:       other,
		TimeCreated: time.Now(),
	}
}

// NewConnectionFailedEvent reports a transport failure while requesting
// the web service.
func NewConnectionFailedEvent(reference, message string) Event {
	return newEvent(EventConnectionFailed, map[string]any{
		otherReference: reference,
		otherMessage:   message,
	})
}

// NewGettingVideosFailedEvent reports an error payload returned by the
// web service.
func NewGettingVideosFailedEvent(reference, code, module string) Event {
	return newEvent(EventGettingVideosFailed, map[string]any{
		otherReference: reference,
		otherCode:      code,
		otherModule:    module,
	})
}

// Description returns a non-localised description of what happened.
func (e Event) Description() string {
	switch e.Name {
	case EventConnectionFailed:
		return fmt.Sprintf("Connection to OpenVeo web service failed with message: %v.", e.Other[otherMessage])
	case EventGettingVideosFailed:
		return fmt.Sprintf("Failed to get videos with code %v from module %v.", e.Other[otherCode], e.Other[otherModule])
	default:
		return fmt.Sprintf("Event %s occurred.", e.Name)
	}
}
