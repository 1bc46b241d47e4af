package maintenance

import (
	"fmt"
	"time"
)

// Plan is a per-model maintenance cycle definition: up to three thresholds,
// one per trigger dimension. A zero threshold means the dimension does not
// apply to entities on this plan.
type Plan struct {
	id           uint
	ownerID      uint
	name         string
	cycleHours   float64
	cycleFlights uint
	cycleDays    uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPlan(
	ownerID uint,
	name string,
	cycleHours float64,
	cycleFlights uint,
	cycleDays uint,
) (*Plan, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 128 {
		return nil, fmt.Errorf("name exceeds maximum length of 128 characters")
	}
	if cycleHours < 0 {
		return nil, fmt.Errorf("cycle hours cannot be negative")
	}

	now := time.Now()

	return &Plan{
		ownerID:      ownerID,
		name:         name,
		cycleHours:   cycleHours,
		cycleFlights: cycleFlights,
		cycleDays:    cycleDays,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPlan(
	id uint,
	ownerID uint,
	name string,
	cycleHours float64,
	cycleFlights uint,
	cycleDays uint,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Plan{
		id:           id,
		ownerID:      ownerID,
		name:         name,
		cycleHours:   cycleHours,
		cycleFlights: cycleFlights,
		cycleDays:    cycleDays,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) OwnerID() uint {
	return p.ownerID
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) CycleHours() float64 {
	return p.cycleHours
}

func (p *Plan) CycleFlights() uint {
	return p.cycleFlights
}

func (p *Plan) CycleDays() uint {
	return p.cycleDays
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 128 {
		return fmt.Errorf("name exceeds maximum length of 128 characters")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

// UpdateThresholds replaces the cycle thresholds. Catalog edits apply to
// subsequent evaluations only; in-flight evaluations keep their snapshot.
func (p *Plan) UpdateThresholds(cycleHours float64, cycleFlights uint, cycleDays uint) error {
	if cycleHours < 0 {
		return fmt.Errorf("cycle hours cannot be negative")
	}
	p.cycleHours = cycleHours
	p.cycleFlights = cycleFlights
	p.cycleDays = cycleDays
	p.updatedAt = time.Now()
	return nil
}

// HasAnyThreshold reports whether at least one dimension applies.
func (p *Plan) HasAnyThreshold() bool {
	return p.cycleHours > 0 || p.cycleFlights > 0 || p.cycleDays > 0
}
