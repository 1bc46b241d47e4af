package ticket

import (
	"fmt"
	"time"

	"skymaint/internal/domain/shared/events"
)

const (
	EventTypeTicketCreated    = "ticket.created"
	EventTypeTicketAssigned   = "ticket.assigned"
	EventTypeTicketReported   = "ticket.reported"
	EventTypeTicketClosed     = "ticket.closed"
	EventTypeTicketAttachment = "ticket.attachment_added"
)

// TicketCreatedEvent is published after a ticket is persisted.
type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID     uint   `json:"ticket_id"`
	Number       string `json:"number"`
	OwnerID      uint   `json:"owner_id"`
	AssetID      uint   `json:"asset_id"`
	ComponentIDs []uint `json:"component_ids"`
	Type         string `json:"type"`
	Priority     string `json:"priority"`
	ActorID      uint   `json:"actor_id"`
}

func NewTicketCreatedEvent(t *Ticket, actorID uint) *TicketCreatedEvent {
	return &TicketCreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket-%d", t.ID()),
			EventType:   EventTypeTicketCreated,
			OccurredAt:  time.Now(),
		},
		TicketID:     t.ID(),
		Number:       t.Number(),
		OwnerID:      t.OwnerID(),
		AssetID:      t.AssetID(),
		ComponentIDs: t.ComponentIDs(),
		Type:         t.Type().String(),
		Priority:     t.Priority().String(),
		ActorID:      actorID,
	}
}

// TicketAssignedEvent is published after a technician is assigned.
type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID     uint   `json:"ticket_id"`
	Number       string `json:"number"`
	OwnerID      uint   `json:"owner_id"`
	TechnicianID uint   `json:"technician_id"`
	ActorID      uint   `json:"actor_id"`
}

func NewTicketAssignedEvent(t *Ticket, technicianID, actorID uint) *TicketAssignedEvent {
	return &TicketAssignedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket-%d", t.ID()),
			EventType:   EventTypeTicketAssigned,
			OccurredAt:  time.Now(),
		},
		TicketID:     t.ID(),
		Number:       t.Number(),
		OwnerID:      t.OwnerID(),
		TechnicianID: technicianID,
		ActorID:      actorID,
	}
}

// TicketReportedEvent is published after a work report is recorded.
type TicketReportedEvent struct {
	events.BaseEvent
	TicketID uint   `json:"ticket_id"`
	Number   string `json:"number"`
	OwnerID  uint   `json:"owner_id"`
	Report   string `json:"report"`
	Closed   bool   `json:"closed"`
	ActorID  uint   `json:"actor_id"`
}

func NewTicketReportedEvent(t *Ticket, report string, closed bool, actorID uint) *TicketReportedEvent {
	return &TicketReportedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket-%d", t.ID()),
			EventType:   EventTypeTicketReported,
			OccurredAt:  time.Now(),
		},
		TicketID: t.ID(),
		Number:   t.Number(),
		OwnerID:  t.OwnerID(),
		Report:   report,
		Closed:   closed,
		ActorID:  actorID,
	}
}

// TicketClosedEvent is published after the terminal transition commits.
type TicketClosedEvent struct {
	events.BaseEvent
	TicketID     uint   `json:"ticket_id"`
	Number       string `json:"number"`
	OwnerID      uint   `json:"owner_id"`
	AssetID      uint   `json:"asset_id"`
	ComponentIDs []uint `json:"component_ids"`
	ClosingNote  string `json:"closing_note"`
	ActorID      uint   `json:"actor_id"`
}

func NewTicketClosedEvent(t *Ticket, actorID uint) *TicketClosedEvent {
	return &TicketClosedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket-%d", t.ID()),
			EventType:   EventTypeTicketClosed,
			OccurredAt:  time.Now(),
		},
		TicketID:     t.ID(),
		Number:       t.Number(),
		OwnerID:      t.OwnerID(),
		AssetID:      t.AssetID(),
		ComponentIDs: t.ComponentIDs(),
		ClosingNote:  t.ClosingNote(),
		ActorID:      actorID,
	}
}

// TicketAttachmentAddedEvent is published after an attachment is stored.
type TicketAttachmentAddedEvent struct {
	events.BaseEvent
	TicketID uint   `json:"ticket_id"`
	Number   string `json:"number"`
	OwnerID  uint   `json:"owner_id"`
	FileRef  string `json:"file_ref"`
	ActorID  uint   `json:"actor_id"`
}

func NewTicketAttachmentAddedEvent(t *Ticket, fileRef string, actorID uint) *TicketAttachmentAddedEvent {
	return &TicketAttachmentAddedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("ticket-%d", t.ID()),
			EventType:   EventTypeTicketAttachment,
			OccurredAt:  time.Now(),
		},
		TicketID: t.ID(),
		Number:   t.Number(),
		OwnerID:  t.OwnerID(),
		FileRef:  fileRef,
		ActorID:  actorID,
	}
}
