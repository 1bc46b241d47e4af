package repository

import (
	"context"

	"gorm.io/gorm"

	"skymaint/internal/domain/ticket"
	"skymaint/internal/infrastructure/persistence/mappers"
	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/db"
	"skymaint/internal/shared/errors"
)

// TicketEventRepository is append-only: it exposes Append and ListByTicketID
// and nothing else. The audit trail is never rewritten.
type TicketEventRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketEventRepository(database *gorm.DB) *TicketEventRepository {
	return &TicketEventRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketEventRepository) Append(ctx context.Context, e *ticket.Event) error {
	model := r.mapper.EventToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewStorageError("failed to append ticket event", err)
	}

	return e.SetID(model.ID)
}

func (r *TicketEventRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Event, error) {
	var eventModels []models.TicketEventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to list ticket events", err)
	}

	events := make([]*ticket.Event, 0, len(eventModels))
	for i := range eventModels {
		e, err := r.mapper.EventToDomain(&eventModels[i])
		if err != nil {
			return nil, errors.NewStorageError("failed to map ticket event", err)
		}
		events = append(events, e)
	}

	return events, nil
}
