package migration

import (
	"fmt"

	"gorm.io/gorm"

	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/logger"
)

// GormAutoMigrateStrategy implements migration using GORM AutoMigrate
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm-auto"),
	}
}

// Migrate runs GORM AutoMigrate for the given models
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

// GetName returns the strategy name
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels returns every persistent model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AssetModel{},
		&models.ComponentModel{},
		&models.MaintenancePlanModel{},
		&models.TicketModel{},
		&models.TicketComponentModel{},
		&models.TicketEventModel{},
		&models.TicketAttachmentModel{},
	}
}
