package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"skymaint/internal/domain/ticket"
	vo "skymaint/internal/domain/ticket/valueobjects"
	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/biztime"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (m TicketMapper) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	autoReason, err := json.Marshal(t.AutoReason())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal auto reason: %w", err)
	}

	var closedAt *int64
	if t.ClosedAt() != nil {
		millis := biztime.ToMillis(*t.ClosedAt())
		closedAt = &millis
	}

	return &models.TicketModel{
		ID:          t.ID(),
		Number:      t.Number(),
		OwnerID:     t.OwnerID(),
		AssetID:     t.AssetID(),
		Type:        t.Type().String(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		AssigneeID:  t.AssigneeID(),
		AutoReason:  datatypes.JSON(autoReason),
		ClosingNote: t.ClosingNote(),
		Version:     t.Version(),
		OpenedAt:    biztime.ToMillis(t.OpenedAt()),
		ClosedAt:    closedAt,
		CreatedAt:   biztime.ToMillis(t.CreatedAt()),
		UpdatedAt:   biztime.ToMillis(t.UpdatedAt()),
	}, nil
}

func (m TicketMapper) ToDomain(model *models.TicketModel, componentIDs []uint) (*ticket.Ticket, error) {
	ticketType, err := vo.NewType(model.Type)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	var autoReason []ticket.ReasonEntry
	if len(model.AutoReason) > 0 {
		if err := json.Unmarshal(model.AutoReason, &autoReason); err != nil {
			return nil, fmt.Errorf("failed to unmarshal auto reason: %w", err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Number,
		model.OwnerID,
		model.AssetID,
		componentIDs,
		ticketType,
		priority,
		status,
		model.AssigneeID,
		autoReason,
		model.ClosingNote,
		model.Version,
		biztime.FromMillis(model.OpenedAt),
		millisPtrToTime(model.ClosedAt),
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func millisPtrToTime(millis *int64) *time.Time {
	if millis == nil {
		return nil
	}
	t := biztime.FromMillis(*millis)
	return &t
}

func (m TicketMapper) EventToModel(e *ticket.Event) *models.TicketEventModel {
	return &models.TicketEventModel{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		EventType: e.Type().String(),
		Message:   e.Message(),
		ActorID:   e.ActorID(),
		CreatedAt: biztime.ToMillis(e.CreatedAt()),
	}
}

func (m TicketMapper) EventToDomain(model *models.TicketEventModel) (*ticket.Event, error) {
	eventType, err := vo.NewEventType(model.EventType)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructEvent(
		model.ID,
		model.TicketID,
		eventType,
		model.Message,
		model.ActorID,
		biztime.FromMillis(model.CreatedAt),
	)
}

func (m TicketMapper) AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:          a.ID(),
		TicketID:    a.TicketID(),
		Description: a.Description(),
		FileRef:     a.FileRef(),
		UploadedBy:  a.UploadedBy(),
		CreatedAt:   biztime.ToMillis(a.CreatedAt()),
	}
}

func (m TicketMapper) AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.Description,
		model.FileRef,
		model.UploadedBy,
		biztime.FromMillis(model.CreatedAt),
	)
}
