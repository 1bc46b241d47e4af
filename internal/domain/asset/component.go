package asset

import (
	"fmt"
	"time"
)

// Component is a replaceable sub-part of an Asset. It is exclusively owned
// by one asset and evaluated independently of it.
type Component struct {
	id           uint
	assetID      uint
	ownerID      uint
	serialNumber string
	active       bool
	planID       *uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewComponent(
	assetID uint,
	ownerID uint,
	serialNumber string,
	planID *uint,
) (*Component, error) {
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if planID != nil && *planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}

	now := time.Now()

	return &Component{
		assetID:      assetID,
		ownerID:      ownerID,
		serialNumber: serialNumber,
		active:       true,
		planID:       planID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructComponent(
	id uint,
	assetID uint,
	ownerID uint,
	serialNumber string,
	active bool,
	planID *uint,
	createdAt, updatedAt time.Time,
) (*Component, error) {
	if id == 0 {
		return nil, fmt.Errorf("component ID cannot be zero")
	}
	if assetID == 0 {
		return nil, fmt.Errorf("asset ID is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Component{
		id:           id,
		assetID:      assetID,
		ownerID:      ownerID,
		serialNumber: serialNumber,
		active:       active,
		planID:       planID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Component) ID() uint {
	return c.id
}

func (c *Component) AssetID() uint {
	return c.assetID
}

func (c *Component) OwnerID() uint {
	return c.ownerID
}

func (c *Component) SerialNumber() string {
	return c.serialNumber
}

func (c *Component) IsActive() bool {
	return c.active
}

func (c *Component) PlanID() *uint {
	return c.planID
}

func (c *Component) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Component) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Component) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("component ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("component ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Component) AssignPlan(planID uint) error {
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	c.planID = &planID
	c.updatedAt = time.Now()
	return nil
}

func (c *Component) Deactivate() {
	c.active = false
	c.updatedAt = time.Now()
}

// BelongsTo reports whether the component is owned by the given asset.
func (c *Component) BelongsTo(assetID uint) bool {
	return c.assetID == assetID
}
