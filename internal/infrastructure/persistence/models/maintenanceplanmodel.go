package models

// MaintenancePlanModel stores cycle thresholds as typed columns; a zero
// threshold means the dimension does not apply.
type MaintenancePlanModel struct {
	ID           uint    `gorm:"primaryKey"`
	OwnerID      uint    `gorm:"not null;index"`
	Name         string  `gorm:"size:128;not null"`
	CycleHours   float64 `gorm:"not null;default:0"`
	CycleFlights uint    `gorm:"not null;default:0"`
	CycleDays    uint    `gorm:"not null;default:0"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (MaintenancePlanModel) TableName() string {
	return "maintenance_plans"
}
