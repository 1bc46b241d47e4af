package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID          uint           `gorm:"primaryKey"`
	Number      string         `gorm:"uniqueIndex;size:50;not null"`
	OwnerID     uint           `gorm:"not null;index"`
	AssetID     uint           `gorm:"not null;index"`
	Type        string         `gorm:"size:20;not null;index"`
	Priority    string         `gorm:"size:20;not null;index"`
	Status      string         `gorm:"size:20;not null;index"`
	AssigneeID  *uint          `gorm:"index"`
	AutoReason  datatypes.JSON `gorm:"type:json"`
	ClosingNote string         `gorm:"type:text"`
	Version     int            `gorm:"not null;default:1"`
	OpenedAt    int64          `gorm:"not null"`
	ClosedAt    *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "maintenance_tickets"
}

// TicketComponentModel is the explicit ticket-to-component join.
type TicketComponentModel struct {
	ID          uint `gorm:"primaryKey"`
	TicketID    uint `gorm:"not null;index;uniqueIndex:idx_ticket_component"`
	ComponentID uint `gorm:"not null;index;uniqueIndex:idx_ticket_component"`
}

func (TicketComponentModel) TableName() string {
	return "ticket_components"
}

// TicketEventModel rows are append-only; there is no update or delete path.
type TicketEventModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	EventType string `gorm:"size:20;not null;index"`
	Message   string `gorm:"type:text"`
	ActorID   uint   `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketEventModel) TableName() string {
	return "ticket_events"
}

type TicketAttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	Description string `gorm:"size:255"`
	FileRef     string `gorm:"size:512;not null"`
	UploadedBy  uint   `gorm:"not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}
