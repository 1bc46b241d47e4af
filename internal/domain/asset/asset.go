package asset

import (
	"fmt"
	"time"
)

// Asset is a tracked piece of fleet equipment subject to maintenance triggers.
type Asset struct {
	id           uint
	ownerID      uint
	clientID     *uint
	code         string
	serialNumber string
	active       bool
	planID       *uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAsset(
	ownerID uint,
	code string,
	serialNumber string,
	planID *uint,
) (*Asset, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("code is required")
	}
	if len(code) > 64 {
		return nil, fmt.Errorf("code exceeds maximum length of 64 characters")
	}
	if len(serialNumber) == 0 {
		return nil, fmt.Errorf("serial number is required")
	}
	if planID != nil && *planID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}

	now := time.Now()

	return &Asset{
		ownerID:      ownerID,
		code:         code,
		serialNumber: serialNumber,
		active:       true,
		planID:       planID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAsset(
	id uint,
	ownerID uint,
	clientID *uint,
	code string,
	serialNumber string,
	active bool,
	planID *uint,
	createdAt, updatedAt time.Time,
) (*Asset, error) {
	if id == 0 {
		return nil, fmt.Errorf("asset ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("code is required")
	}

	return &Asset{
		id:           id,
		ownerID:      ownerID,
		clientID:     clientID,
		code:         code,
		serialNumber: serialNumber,
		active:       active,
		planID:       planID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Asset) ID() uint {
	return a.id
}

func (a *Asset) OwnerID() uint {
	return a.ownerID
}

func (a *Asset) ClientID() *uint {
	return a.clientID
}

func (a *Asset) Code() string {
	return a.code
}

func (a *Asset) SerialNumber() string {
	return a.serialNumber
}

func (a *Asset) IsActive() bool {
	return a.active
}

func (a *Asset) PlanID() *uint {
	return a.planID
}

func (a *Asset) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Asset) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Asset) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("asset ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("asset ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Asset) AssignClient(clientID uint) error {
	if clientID == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	a.clientID = &clientID
	a.updatedAt = time.Now()
	return nil
}

func (a *Asset) UnassignClient() {
	a.clientID = nil
	a.updatedAt = time.Now()
}

func (a *Asset) AssignPlan(planID uint) error {
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	a.planID = &planID
	a.updatedAt = time.Now()
	return nil
}

// Deactivate soft-deletes the asset. Components cascade in the
// deactivation use case, not here.
func (a *Asset) Deactivate() {
	a.active = false
	a.updatedAt = time.Now()
}

func (a *Asset) Activate() {
	a.active = true
	a.updatedAt = time.Now()
}
