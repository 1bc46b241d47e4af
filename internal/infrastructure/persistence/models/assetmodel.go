package models

// AssetModel carries both the asset identity and its usage ledger columns.
// Counters accumulate since the last maintenance and are zeroed only by
// ticket closure.
type AssetModel struct {
	ID              uint    `gorm:"primaryKey"`
	OwnerID         uint    `gorm:"not null;index;uniqueIndex:idx_assets_owner_code"`
	ClientID        *uint   `gorm:"index"`
	Code            string  `gorm:"size:64;not null;uniqueIndex:idx_assets_owner_code"`
	SerialNumber    string  `gorm:"size:128;not null"`
	Active          bool    `gorm:"not null;default:true;index"`
	PlanID          *uint   `gorm:"index"`
	LastMaintenance *int64  `gorm:"index"`
	UsageHours      float64 `gorm:"not null;default:0"`
	UsageFlights    uint    `gorm:"not null;default:0"`
	UsageDistance   float64 `gorm:"not null;default:0"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (AssetModel) TableName() string {
	return "assets"
}

type ComponentModel struct {
	ID              uint    `gorm:"primaryKey"`
	AssetID         uint    `gorm:"not null;index"`
	OwnerID         uint    `gorm:"not null;index"`
	SerialNumber    string  `gorm:"size:128;not null"`
	Active          bool    `gorm:"not null;default:true;index"`
	PlanID          *uint   `gorm:"index"`
	LastMaintenance *int64  `gorm:"index"`
	UsageHours      float64 `gorm:"not null;default:0"`
	UsageFlights    uint    `gorm:"not null;default:0"`
	UsageDistance   float64 `gorm:"not null;default:0"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ComponentModel) TableName() string {
	return "components"
}
