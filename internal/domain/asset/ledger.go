package asset

import (
	"context"
	"time"
)

// EntityKind distinguishes the two independently evaluable entity kinds.
type EntityKind string

const (
	KindAsset     EntityKind = "asset"
	KindComponent EntityKind = "component"
)

func (k EntityKind) String() string {
	return string(k)
}

func (k EntityKind) IsValid() bool {
	return k == KindAsset || k == KindComponent
}

// UsageSnapshot is a point-in-time read of an entity's accumulated usage
// since its last maintenance. Counters are mutated externally by mission
// completion; this core only ever resets them on ticket closure.
type UsageSnapshot struct {
	EntityID        uint
	Kind            EntityKind
	Hours           float64
	Flights         uint
	Distance        float64
	LastMaintenance time.Time
	// HasUsage is false when no usage data has ever been recorded for the
	// entity, so a data-collection gap is not mistaken for a true ok.
	HasUsage bool
}

// UsageLedger supplies per-entity usage counters and the last-maintenance
// timestamp. Read-only to this core except for ResetCounters, which is
// called exclusively from ticket closure inside the closing transaction.
type UsageLedger interface {
	GetCounters(ctx context.Context, kind EntityKind, entityID uint) (UsageSnapshot, error)
	ResetCounters(ctx context.Context, kind EntityKind, entityID uint, at time.Time) error
}
