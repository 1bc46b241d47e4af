package ticket

import (
	"fmt"
	"time"

	vo "skymaint/internal/domain/ticket/valueobjects"
)

// Event is an immutable audit record of a ticket lifecycle action. It is
// never updated or deleted after being appended.
type Event struct {
	id        uint
	ticketID  uint
	eventType vo.EventType
	message   string
	actorID   uint
	createdAt time.Time
}

func NewEvent(
	ticketID uint,
	eventType vo.EventType,
	message string,
	actorID uint,
) (*Event, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type")
	}
	if actorID == 0 {
		return nil, fmt.Errorf("actor ID is required")
	}

	return &Event{
		ticketID:  ticketID,
		eventType: eventType,
		message:   message,
		actorID:   actorID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructEvent(
	id uint,
	ticketID uint,
	eventType vo.EventType,
	message string,
	actorID uint,
	createdAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type")
	}

	return &Event{
		id:        id,
		ticketID:  ticketID,
		eventType: eventType,
		message:   message,
		actorID:   actorID,
		createdAt: createdAt,
	}, nil
}

func (e *Event) ID() uint {
	return e.id
}

func (e *Event) TicketID() uint {
	return e.ticketID
}

func (e *Event) Type() vo.EventType {
	return e.eventType
}

func (e *Event) Message() string {
	return e.message
}

func (e *Event) ActorID() uint {
	return e.actorID
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}
