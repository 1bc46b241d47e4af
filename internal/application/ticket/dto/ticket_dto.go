package dto

import (
	"time"

	"skymaint/internal/domain/ticket"
)

// ReasonDTO is one auto-reason entry captured at ticket creation.
type ReasonDTO struct {
	Dimension string  `json:"dimension"`
	Consumed  float64 `json:"consumed"`
	Threshold float64 `json:"threshold"`
	Fraction  float64 `json:"fraction"`
}

// TicketDTO is the transport representation of a maintenance ticket.
type TicketDTO struct {
	ID           uint        `json:"id"`
	Number       string      `json:"number"`
	AssetID      uint        `json:"asset_id"`
	ComponentIDs []uint      `json:"component_ids"`
	Type         string      `json:"type"`
	Priority     string      `json:"priority"`
	Status       string      `json:"status"`
	AssigneeID   *uint       `json:"assignee_id,omitempty"`
	AutoReason   []ReasonDTO `json:"auto_reason"`
	ClosingNote  string      `json:"closing_note,omitempty"`
	OpenedAt     time.Time   `json:"opened_at"`
	ClosedAt     *time.Time  `json:"closed_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// FromTicket converts a domain ticket for transport.
func FromTicket(t *ticket.Ticket) TicketDTO {
	reasons := make([]ReasonDTO, 0, len(t.AutoReason()))
	for _, r := range t.AutoReason() {
		reasons = append(reasons, ReasonDTO{
			Dimension: r.Dimension,
			Consumed:  r.Consumed,
			Threshold: r.Threshold,
			Fraction:  r.Fraction,
		})
	}

	return TicketDTO{
		ID:           t.ID(),
		Number:       t.Number(),
		AssetID:      t.AssetID(),
		ComponentIDs: t.ComponentIDs(),
		Type:         t.Type().String(),
		Priority:     t.Priority().String(),
		Status:       t.Status().String(),
		AssigneeID:   t.AssigneeID(),
		AutoReason:   reasons,
		ClosingNote:  t.ClosingNote(),
		OpenedAt:     t.OpenedAt(),
		ClosedAt:     t.ClosedAt(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

// EventDTO is the transport representation of an audit-trail entry.
type EventDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	ActorID   uint      `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEvent converts a domain event for transport.
func FromEvent(e *ticket.Event) EventDTO {
	return EventDTO{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		Type:      e.Type().String(),
		Message:   e.Message(),
		ActorID:   e.ActorID(),
		CreatedAt: e.CreatedAt(),
	}
}

// AttachmentDTO is the transport representation of a ticket attachment.
type AttachmentDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	Description string    `json:"description"`
	FileRef     string    `json:"file_ref"`
	UploadedBy  uint      `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromAttachment converts a domain attachment for transport.
func FromAttachment(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		Description: a.Description(),
		FileRef:     a.FileRef(),
		UploadedBy:  a.UploadedBy(),
		CreatedAt:   a.CreatedAt(),
	}
}
