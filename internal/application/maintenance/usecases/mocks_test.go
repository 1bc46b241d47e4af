package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"skymaint/internal/application/maintenance/dto"
	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/maintenance"
	"skymaint/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockAssetRepository struct {
	GetByIDFunc   func(ctx context.Context, id uint, ownerID uint) (*asset.Asset, error)
	GetByCodeFunc func(ctx context.Context, code string, ownerID uint) (*asset.Asset, error)
	ListFunc      func(ctx context.Context, ownerID uint) ([]*asset.Asset, error)
	SaveFunc      func(ctx context.Context, a *asset.Asset) error
	UpdateFunc    func(ctx context.Context, a *asset.Asset) error
}

func (m *mockAssetRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*asset.Asset, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockAssetRepository) GetByCode(ctx context.Context, code string, ownerID uint) (*asset.Asset, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code, ownerID)
	}
	return nil, nil
}

func (m *mockAssetRepository) List(ctx context.Context, ownerID uint) ([]*asset.Asset, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

type mockComponentRepository struct {
	GetByIDFunc             func(ctx context.Context, id uint, ownerID uint) (*asset.Component, error)
	ListByAssetIDFunc       func(ctx context.Context, assetID uint, ownerID uint) ([]*asset.Component, error)
	ListByIDsFunc           func(ctx context.Context, ids []uint, ownerID uint) ([]*asset.Component, error)
	ListFunc                func(ctx context.Context, ownerID uint) ([]*asset.Component, error)
	SaveFunc                func(ctx context.Context, c *asset.Component) error
	UpdateFunc              func(ctx context.Context, c *asset.Component) error
	DeactivateByAssetIDFunc func(ctx context.Context, assetID uint, ownerID uint) error
}

func (m *mockComponentRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*asset.Component, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockComponentRepository) ListByAssetID(ctx context.Context, assetID uint, ownerID uint) ([]*asset.Component, error) {
	if m.ListByAssetIDFunc != nil {
		return m.ListByAssetIDFunc(ctx, assetID, ownerID)
	}
	return nil, nil
}

func (m *mockComponentRepository) ListByIDs(ctx context.Context, ids []uint, ownerID uint) ([]*asset.Component, error) {
	if m.ListByIDsFunc != nil {
		return m.ListByIDsFunc(ctx, ids, ownerID)
	}
	return nil, nil
}

func (m *mockComponentRepository) List(ctx context.Context, ownerID uint) ([]*asset.Component, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockComponentRepository) Save(ctx context.Context, c *asset.Component) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComponentRepository) Update(ctx context.Context, c *asset.Component) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockComponentRepository) DeactivateByAssetID(ctx context.Context, assetID uint, ownerID uint) error {
	if m.DeactivateByAssetIDFunc != nil {
		return m.DeactivateByAssetIDFunc(ctx, assetID, ownerID)
	}
	return nil
}

type mockPlanRepository struct {
	GetByIDFunc func(ctx context.Context, id uint, ownerID uint) (*maintenance.Plan, error)
	ListFunc    func(ctx context.Context, ownerID uint) ([]*maintenance.Plan, error)
	SaveFunc    func(ctx context.Context, p *maintenance.Plan) error
	UpdateFunc  func(ctx context.Context, p *maintenance.Plan) error

	getCalls int
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*maintenance.Plan, error) {
	m.getCalls++
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockPlanRepository) List(ctx context.Context, ownerID uint) ([]*maintenance.Plan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPlanRepository) Save(ctx context.Context, p *maintenance.Plan) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPlanRepository) Update(ctx context.Context, p *maintenance.Plan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

type mockUsageLedger struct {
	GetCountersFunc   func(ctx context.Context, kind asset.EntityKind, entityID uint) (asset.UsageSnapshot, error)
	ResetCountersFunc func(ctx context.Context, kind asset.EntityKind, entityID uint, at time.Time) error
}

func (m *mockUsageLedger) GetCounters(ctx context.Context, kind asset.EntityKind, entityID uint) (asset.UsageSnapshot, error) {
	if m.GetCountersFunc != nil {
		return m.GetCountersFunc(ctx, kind, entityID)
	}
	return asset.UsageSnapshot{EntityID: entityID, Kind: kind}, nil
}

func (m *mockUsageLedger) ResetCounters(ctx context.Context, kind asset.EntityKind, entityID uint, at time.Time) error {
	if m.ResetCountersFunc != nil {
		return m.ResetCountersFunc(ctx, kind, entityID, at)
	}
	return nil
}

type mockStatusCache struct {
	GetFunc        func(ctx context.Context, ownerID uint) ([]dto.EntityStatusDTO, bool, error)
	SetFunc        func(ctx context.Context, ownerID uint, statuses []dto.EntityStatusDTO) error
	InvalidateFunc func(ctx context.Context, ownerID uint) error

	stored []dto.EntityStatusDTO
}

func (m *mockStatusCache) Get(ctx context.Context, ownerID uint) ([]dto.EntityStatusDTO, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, ownerID)
	}
	return nil, false, nil
}

func (m *mockStatusCache) Set(ctx context.Context, ownerID uint, statuses []dto.EntityStatusDTO) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, ownerID, statuses)
	}
	m.stored = statuses
	return nil
}

func (m *mockStatusCache) Invalidate(ctx context.Context, ownerID uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, ownerID)
	}
	return nil
}
