package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"skymaint/internal/domain/ticket"
	"skymaint/internal/infrastructure/persistence/mappers"
	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/db"
	"skymaint/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return errors.NewStorageError("failed to map ticket", err)
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewStorageError("failed to save ticket", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return errors.NewStorageError("failed to set ticket ID", err)
	}

	return r.saveComponentLinks(tx, t)
}

func (r *TicketRepository) saveComponentLinks(tx *gorm.DB, t *ticket.Ticket) error {
	for _, cid := range t.ComponentIDs() {
		link := models.TicketComponentModel{TicketID: t.ID(), ComponentID: cid}
		if err := tx.Create(&link).Error; err != nil {
			return errors.NewStorageError("failed to save ticket component link", err)
		}
	}
	return nil
}

// Update is a compare-and-set on the version column: the row is matched at
// the version the aggregate was loaded with, so a concurrent writer makes
// this update touch zero rows and the caller sees a conflict.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return errors.NewStorageError("failed to map ticket", err)
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, t.LoadedVersion()).
		Select("status", "assignee_id", "closing_note", "version", "closed_at", "updated_at").
		Updates(map[string]interface{}{
			"status":       model.Status,
			"assignee_id":  model.AssigneeID,
			"closing_note": model.ClosingNote,
			"version":      model.Version,
			"closed_at":    model.ClosedAt,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return errors.NewStorageError("failed to update ticket", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewConflictError(fmt.Sprintf("ticket %d was modified concurrently", t.ID()))
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", id))
		}
		return nil, errors.NewStorageError("failed to find ticket", err)
	}

	return r.toDomainWithComponents(tx, &model)
}

func (r *TicketRepository) GetByNumber(ctx context.Context, number string, ownerID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ? AND owner_id = ?", number, ownerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %s not found", number))
		}
		return nil, errors.NewStorageError("failed to find ticket", err)
	}

	return r.toDomainWithComponents(tx, &model)
}

func (r *TicketRepository) List(ctx context.Context, ownerID uint, filter ticket.Filter, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{}).Where("owner_id = ?", ownerID)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssetID != nil {
		query = query.Where("asset_id = ?", *filter.AssetID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.NewStorageError("failed to count tickets", err)
	}

	var ticketModels []models.TicketModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, errors.NewStorageError("failed to list tickets", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.toDomainWithComponents(tx, &ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

// CountByDate counts tickets opened on the given UTC day (YYYYMMDD),
// backing daily ticket number sequences.
func (r *TicketRepository) CountByDate(ctx context.Context, dateKey string) (int64, error) {
	day, err := time.ParseInLocation("20060102", dateKey, time.UTC)
	if err != nil {
		return 0, errors.NewStorageError("invalid date key", err)
	}
	start := day.UnixMilli()
	end := day.AddDate(0, 0, 1).UnixMilli()

	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("opened_at >= ? AND opened_at < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, errors.NewStorageError("failed to count tickets", err)
	}

	return count, nil
}

func (r *TicketRepository) toDomainWithComponents(tx *gorm.DB, model *models.TicketModel) (*ticket.Ticket, error) {
	var links []models.TicketComponentModel
	if err := tx.
		Where("ticket_id = ?", model.ID).
		Order("component_id ASC").
		Find(&links).Error; err != nil {
		return nil, errors.NewStorageError("failed to load ticket components", err)
	}

	componentIDs := make([]uint, 0, len(links))
	for _, link := range links {
		componentIDs = append(componentIDs, link.ComponentID)
	}

	t, err := r.mapper.ToDomain(model, componentIDs)
	if err != nil {
		return nil, errors.NewStorageError("failed to map ticket", err)
	}
	return t, nil
}
