package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"skymaint/internal/domain/asset"
	"skymaint/internal/infrastructure/persistence/mappers"
	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/db"
	"skymaint/internal/shared/errors"
)

type ComponentRepository struct {
	db     *gorm.DB
	mapper mappers.ComponentMapper
}

func NewComponentRepository(database *gorm.DB) *ComponentRepository {
	return &ComponentRepository{
		db:     database,
		mapper: mappers.NewComponentMapper(),
	}
}

func (r *ComponentRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*asset.Component, error) {
	var model models.ComponentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("component %d not found", id))
		}
		return nil, errors.NewStorageError("failed to find component", err)
	}

	c, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, errors.NewStorageError("failed to map component", err)
	}
	return c, nil
}

func (r *ComponentRepository) ListByAssetID(ctx context.Context, assetID uint, ownerID uint) ([]*asset.Component, error) {
	var componentModels []models.ComponentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("asset_id = ? AND owner_id = ?", assetID, ownerID).
		Order("id ASC").
		Find(&componentModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to list components", err)
	}

	return r.toDomainList(componentModels)
}

func (r *ComponentRepository) ListByIDs(ctx context.Context, ids []uint, ownerID uint) ([]*asset.Component, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var componentModels []models.ComponentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id IN ? AND owner_id = ?", ids, ownerID).
		Find(&componentModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to list components", err)
	}

	return r.toDomainList(componentModels)
}

func (r *ComponentRepository) List(ctx context.Context, ownerID uint) ([]*asset.Component, error) {
	var componentModels []models.ComponentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.OwnedBy(ownerID)).
		Order("id ASC").
		Find(&componentModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to list components", err)
	}

	return r.toDomainList(componentModels)
}

func (r *ComponentRepository) Save(ctx context.Context, c *asset.Component) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewStorageError("failed to save component", err)
	}

	return c.SetID(model.ID)
}

func (r *ComponentRepository) Update(ctx context.Context, c *asset.Component) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComponentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"serial_number": model.SerialNumber,
			"active":        model.Active,
			"plan_id":       model.PlanID,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return errors.NewStorageError("failed to update component", result.Error)
	}

	return nil
}

// DeactivateByAssetID cascades an asset deactivation to its components.
func (r *ComponentRepository) DeactivateByAssetID(ctx context.Context, assetID uint, ownerID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComponentModel{}).
		Where("asset_id = ? AND owner_id = ?", assetID, ownerID).
		Updates(map[string]interface{}{
			"active":     false,
			"updated_at": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return errors.NewStorageError("failed to deactivate components", result.Error)
	}

	return nil
}

func (r *ComponentRepository) toDomainList(componentModels []models.ComponentModel) ([]*asset.Component, error) {
	components := make([]*asset.Component, 0, len(componentModels))
	for i := range componentModels {
		c, err := r.mapper.ToDomain(&componentModels[i])
		if err != nil {
			return nil, errors.NewStorageError("failed to map component", err)
		}
		components = append(components, c)
	}
	return components, nil
}
