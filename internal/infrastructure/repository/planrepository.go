package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skymaint/internal/domain/maintenance"
	"skymaint/internal/infrastructure/persistence/mappers"
	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/db"
	"skymaint/internal/shared/errors"
)

type PlanRepository struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{
		db:     database,
		mapper: mappers.NewPlanMapper(),
	}
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*maintenance.Plan, error) {
	var model models.MaintenancePlanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("maintenance plan %d not found", id))
		}
		return nil, errors.NewStorageError("failed to find maintenance plan", err)
	}

	p, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, errors.NewStorageError("failed to map maintenance plan", err)
	}
	return p, nil
}

func (r *PlanRepository) List(ctx context.Context, ownerID uint) ([]*maintenance.Plan, error) {
	var planModels []models.MaintenancePlanModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.OwnedBy(ownerID)).
		Order("name ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to list maintenance plans", err)
	}

	plans := make([]*maintenance.Plan, 0, len(planModels))
	for i := range planModels {
		p, err := r.mapper.ToDomain(&planModels[i])
		if err != nil {
			return nil, errors.NewStorageError("failed to map maintenance plan", err)
		}
		plans = append(plans, p)
	}

	return plans, nil
}

func (r *PlanRepository) Save(ctx context.Context, p *maintenance.Plan) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewStorageError("failed to save maintenance plan", err)
	}

	return p.SetID(model.ID)
}

func (r *PlanRepository) Update(ctx context.Context, p *maintenance.Plan) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MaintenancePlanModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"cycle_hours":   model.CycleHours,
			"cycle_flights": model.CycleFlights,
			"cycle_days":    model.CycleDays,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return errors.NewStorageError("failed to update maintenance plan", result.Error)
	}

	return nil
}
