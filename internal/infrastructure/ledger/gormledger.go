// Package ledger implements the usage ledger port over the asset and
// component tables. Counter mutation from mission completion lives outside
// this service; this side only reads snapshots and performs the closure
// reset.
package ledger

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

type GormUsageLedger struct {
	db              *gorm.DB
	assetMapper     mappers.AssetMapper
	componentMapper mappers.ComponentMapper
}

func NewGormUsageLedger(database *gorm.DB) *GormUsageLedger {
	return &GormUsageLedger{
		db:              database,
		assetMapper:     mappers.NewAssetMapper(),
		componentMapper: mappers.NewComponentMapper(),
	}
}

func (l *GormUsageLedger) GetCounters(ctx context.Context, kind asset.EntityKind, entityID uint) (asset.UsageSnapshot, error) {
	tx := db.GetTxFromContext(ctx, l.db)

	switch kind {
	case asset.KindAsset:
		var model models.AssetModel
		if err := tx.First(&model, entityID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return asset.UsageSnapshot{}, errors.NewNotFoundError(fmt.Sprintf("asset %d not found", entityID))
			}
			return asset.UsageSnapshot{}, errors.NewStorageError("failed to read asset counters", err)
		}
		return l.assetMapper.ToSnapshot(&model), nil

	case asset.KindComponent:
		var model models.ComponentModel
		if err := tx.First(&model, entityID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return asset.UsageSnapshot{}, errors.NewNotFoundError(fmt.Sprintf("component %d not found", entityID))
			}
			return asset.UsageSnapshot{}, errors.NewStorageError("failed to read component counters", err)
		}
		return l.componentMapper.ToSnapshot(&model), nil

	default:
		return asset.UsageSnapshot{}, errors.NewValidationError(fmt.Sprintf("unknown entity kind: %s", kind))
	}
}

// ResetCounters zeroes the accumulated counters and moves the
// last-maintenance clock to the given instant. Called only from ticket
// closure, inside the closing transaction.
func (l *GormUsageLedger) ResetCounters(ctx context.Context, kind asset.EntityKind, entityID uint, at time.Time) error {
	tx := db.GetTxFromContext(ctx, l.db)

	values := map[string]interface{}{
		"usage_hours":      0,
		"usage_flights":    0,
		"usage_distance":   0,
		"last_maintenance": at.UnixMilli(),
		"updated_at":       time.Now().UnixMilli(),
	}

	var result *gorm.DB
	switch kind {
	case asset.KindAsset:
		result = tx.Model(&models.AssetModel{}).Where("id = ?", entityID).Updates(values)
	case asset.KindComponent:
		result = tx.Model(&models.ComponentModel{}).Where("id = ?", entityID).Updates(values)
	default:
		return errors.NewValidationError(fmt.Sprintf("unknown entity kind: %s", kind))
	}

	if result.Error != nil {
		return errors.NewStorageError("failed to reset counters", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("%s %d not found", kind, entityID))
	}

	return nil
}
