package usecases

import (
	"context"
	"io"
	"log/slog"
	"time"

	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/maintenance"
	"skymaint/internal/domain/shared/events"
	"skymaint/internal/domain/ticket"
	"skymaint/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTicketRepository struct {
	GetByIDFunc     func(ctx context.Context, id uint, ownerID uint) (*ticket.Ticket, error)
	GetByNumberFunc func(ctx context.Context, number string, ownerID uint) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, ownerID uint, filter ticket.Filter, page, pageSize int) ([]*ticket.Ticket, int64, error)
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	CountByDateFunc func(ctx context.Context, dateKey string) (int64, error)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string, ownerID uint) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, ownerID uint, filter ticket.Filter, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, ownerID, filter, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	if t.ID() == 0 {
		_ = t.SetID(1)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) CountByDate(ctx context.Context, dateKey string) (int64, error) {
	if m.CountByDateFunc != nil {
		return m.CountByDateFunc(ctx, dateKey)
	}
	return 0, nil
}

type mockEventRepository struct {
	AppendFunc         func(ctx context.Context, e *ticket.Event) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Event, error)

	appended []*ticket.Event
}

func (m *mockEventRepository) Append(ctx context.Context, e *ticket.Event) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	m.appended = append(m.appended, e)
	return nil
}

func (m *mockEventRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Event, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return m.appended, nil
}

type mockAttachmentRepository struct {
	SaveFunc           func(ctx context.Context, a *ticket.Attachment) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	if a.ID() == 0 {
		_ = a.SetID(1)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
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
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint, ownerID uint) (*maintenance.Plan, error) {
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

	resets []struct {
		Kind     asset.EntityKind
		EntityID uint
	}
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
	m.resets = append(m.resets, struct {
		Kind     asset.EntityKind
		EntityID uint
	}{kind, entityID})
	return nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "M-20260801-0001", nil
}

// mockTxRunner runs the function directly; it fails the transaction only
// when the wrapped function fails.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockCacheInvalidator struct {
	InvalidateFunc func(ctx context.Context, ownerID uint) error

	invalidated []uint
}

func (m *mockCacheInvalidator) Invalidate(ctx context.Context, ownerID uint) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, ownerID)
	}
	m.invalidated = append(m.invalidated, ownerID)
	return nil
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error

	published []events.DomainEvent
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	m.published = append(m.published, event)
	return nil
}

func (m *mockEventDispatcher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	m.published = append(m.published, evts...)
	return nil
}

func (m *mockEventDispatcher) Subscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Unsubscribe(eventType string, handler events.EventHandler) error {
	return nil
}

func (m *mockEventDispatcher) Start() error { return nil }

func (m *mockEventDispatcher) Stop() error { return nil }
