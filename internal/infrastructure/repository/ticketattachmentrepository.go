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

type TicketAttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketAttachmentRepository(database *gorm.DB) *TicketAttachmentRepository {
	return &TicketAttachmentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewStorageError("failed to save attachment", err)
	}

	return a.SetID(model.ID)
}

func (r *TicketAttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []models.TicketAttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to list attachments", err)
	}

	attachments := make([]*ticket.Attachment, 0, len(attachmentModels))
	for i := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(&attachmentModels[i])
		if err != nil {
			return nil, errors.NewStorageError("failed to map attachment", err)
		}
		attachments = append(attachments, a)
	}

	return attachments, nil
}
