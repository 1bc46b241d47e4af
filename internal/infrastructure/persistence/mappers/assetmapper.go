package mappers

import (
	"skymaint/internal/domain/asset"
	"skymaint/internal/infrastructure/persistence/models"
	"skymaint/internal/shared/biztime"
)

type AssetMapper struct{}

func NewAssetMapper() AssetMapper {
	return AssetMapper{}
}

// ToModel maps identity fields only. The usage ledger columns on the same
// row are owned by the ledger and never written through this mapper.
func (m AssetMapper) ToModel(a *asset.Asset) *models.AssetModel {
	return &models.AssetModel{
		ID:           a.ID(),
		OwnerID:      a.OwnerID(),
		ClientID:     a.ClientID(),
		Code:         a.Code(),
		SerialNumber: a.SerialNumber(),
		Active:       a.IsActive(),
		PlanID:       a.PlanID(),
		CreatedAt:    biztime.ToMillis(a.CreatedAt()),
		UpdatedAt:    biztime.ToMillis(a.UpdatedAt()),
	}
}

func (m AssetMapper) ToDomain(model *models.AssetModel) (*asset.Asset, error) {
	return asset.ReconstructAsset(
		model.ID,
		model.OwnerID,
		model.ClientID,
		model.Code,
		model.SerialNumber,
		model.Active,
		model.PlanID,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

// ToSnapshot reads the ledger columns of an asset row.
func (m AssetMapper) ToSnapshot(model *models.AssetModel) asset.UsageSnapshot {
	snap := asset.UsageSnapshot{
		EntityID: model.ID,
		Kind:     asset.KindAsset,
		Hours:    model.UsageHours,
		Flights:  model.UsageFlights,
		Distance: model.UsageDistance,
	}
	if model.LastMaintenance != nil {
		snap.LastMaintenance = biztime.FromMillis(*model.LastMaintenance)
		snap.HasUsage = true
	}
	snap.HasUsage = snap.HasUsage || model.UsageHours > 0 || model.UsageFlights > 0 || model.UsageDistance > 0
	return snap
}

type ComponentMapper struct{}

func NewComponentMapper() ComponentMapper {
	return ComponentMapper{}
}

func (m ComponentMapper) ToModel(c *asset.Component) *models.ComponentModel {
	return &models.ComponentModel{
		ID:           c.ID(),
		AssetID:      c.AssetID(),
		OwnerID:      c.OwnerID(),
		SerialNumber: c.SerialNumber(),
		Active:       c.IsActive(),
		PlanID:       c.PlanID(),
		CreatedAt:    biztime.ToMillis(c.CreatedAt()),
		UpdatedAt:    biztime.ToMillis(c.UpdatedAt()),
	}
}

func (m ComponentMapper) ToDomain(model *models.ComponentModel) (*asset.Component, error) {
	return asset.ReconstructComponent(
		model.ID,
		model.AssetID,
		model.OwnerID,
		model.SerialNumber,
		model.Active,
		model.PlanID,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}

func (m ComponentMapper) ToSnapshot(model *models.ComponentModel) asset.UsageSnapshot {
	snap := asset.UsageSnapshot{
		EntityID: model.ID,
		Kind:     asset.KindComponent,
		Hours:    model.UsageHours,
		Flights:  model.UsageFlights,
		Distance: model.UsageDistance,
	}
	if model.LastMaintenance != nil {
		snap.LastMaintenance = biztime.FromMillis(*model.LastMaintenance)
		snap.HasUsage = true
	}
	snap.HasUsage = snap.HasUsage || model.UsageHours > 0 || model.UsageFlights > 0 || model.UsageDistance > 0
	return snap
}
