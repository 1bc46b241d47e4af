package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skymaint/internal/domain/asset"
	"skymaint/internal/infrastructure/persistence/mappers"
	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/db"
	"skymaint/internal/shared/errors"
)

type AssetRepository struct {
	db     *gorm.DB
	mapper mappers.AssetMapper
}

func NewAssetRepository(database *gorm.DB) *AssetRepository {
	return &AssetRepository{
		db:     database,
		mapper: mappers.NewAssetMapper(),
	}
}

func (r *AssetRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("asset %d not found", id))
		}
		return nil, errors.NewStorageError("failed to find asset", err)
	}

	a, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, errors.NewStorageError("failed to map asset", err)
	}
	return a, nil
}

func (r *AssetRepository) GetByCode(ctx context.Context, code string, ownerID uint) (*asset.Asset, error) {
	var model models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("code = ? AND owner_id = ?", code, ownerID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("asset %s not found", code))
		}
		return nil, errors.NewStorageError("failed to find asset", err)
	}

	a, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, errors.NewStorageError("failed to map asset", err)
	}
	return a, nil
}

func (r *AssetRepository) List(ctx context.Context, ownerID uint) ([]*asset.Asset, error) {
	var assetModels []models.AssetModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.OwnedBy(ownerID)).
		Order("code ASC").
		Find(&assetModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to list assets", err)
	}

	assets := make([]*asset.Asset, 0, len(assetModels))
	for i := range assetModels {
		a, err := r.mapper.ToDomain(&assetModels[i])
		if err != nil {
			return nil, errors.NewStorageError("failed to map asset", err)
		}
		assets = append(assets, a)
	}

	return assets, nil
}

func (r *AssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewStorageError("failed to save asset", err)
	}

	return a.SetID(model.ID)
}

func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// Ledger columns stay untouched: only identity fields are written here.
	result := tx.
		Model(&models.AssetModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"client_id":     model.ClientID,
			"serial_number": model.SerialNumber,
			"active":        model.Active,
			"plan_id":       model.PlanID,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return errors.NewStorageError("failed to update asset", result.Error)
	}

	return nil
}
