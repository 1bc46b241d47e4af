package usecases

import (
	"context"
	"time"

	"skymaint/internal/application/maintenance/dto"
	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/maintenance"
	"skymaint/internal/shared/biztime"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
)

// StatusCache caches the evaluated fleet view per owner. A cache miss is
// (nil, false, nil); storage failures are reported but never fatal.
type StatusCache interface {
	Get(ctx context.Context, ownerID uint) ([]dto.EntityStatusDTO, bool, error)
	Set(ctx context.Context, ownerID uint, statuses []dto.EntityStatusDTO) error
	Invalidate(ctx context.Context, ownerID uint) error
}

type ListStatusesQuery struct {
	OwnerID uint
	// AlertRatio overrides the configured ratio for this evaluation only.
	// Overridden evaluations bypass the cache.
	AlertRatio *float64
}

type ListStatusesResult struct {
	Statuses []dto.EntityStatusDTO
}

type ListStatusesExecutor interface {
	Execute(ctx context.Context, query ListStatusesQuery) (*ListStatusesResult, error)
}

type ListStatusesUseCase struct {
	assetRepo     asset.AssetRepository
	componentRepo asset.ComponentRepository
	planRepo      maintenance.PlanRepository
	ledger        asset.UsageLedger
	evaluator     *maintenance.Evaluator
	cache         StatusCache
	logger        logger.Interface
}

func NewListStatusesUseCase(
	assetRepo asset.AssetRepository,
	componentRepo asset.ComponentRepository,
	planRepo maintenance.PlanRepository,
	ledger asset.UsageLedger,
	evaluator *maintenance.Evaluator,
	cache StatusCache,
	logger logger.Interface,
) *ListStatusesUseCase {
	return &ListStatusesUseCase{
		assetRepo:     assetRepo,
		componentRepo: componentRepo,
		planRepo:      planRepo,
		ledger:        ledger,
		evaluator:     evaluator,
		cache:         cache,
		logger:        logger,
	}
}

func (uc *ListStatusesUseCase) Execute(ctx context.Context, query ListStatusesQuery) (*ListStatusesResult, error) {
	if query.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}
	if query.AlertRatio != nil && (*query.AlertRatio <= 0 || *query.AlertRatio > 1) {
		return nil, errors.NewValidationError("alert ratio must be in (0, 1]")
	}

	if query.AlertRatio == nil && uc.cache != nil {
		cached, hit, err := uc.cache.Get(ctx, query.OwnerID)
		if err != nil {
			uc.logger.Warnw("status cache read failed", "owner_id", query.OwnerID, "error", err)
		} else if hit {
			return &ListStatusesResult{Statuses: cached}, nil
		}
	}

	evaluator := uc.evaluator
	if query.AlertRatio != nil {
		evaluator = maintenance.NewEvaluator(*query.AlertRatio)
	}

	statuses, err := uc.evaluateFleet(ctx, query.OwnerID, evaluator)
	if err != nil {
		return nil, err
	}

	if query.AlertRatio == nil && uc.cache != nil {
		if err := uc.cache.Set(ctx, query.OwnerID, statuses); err != nil {
			uc.logger.Warnw("status cache write failed", "owner_id", query.OwnerID, "error", err)
		}
	}

	return &ListStatusesResult{Statuses: statuses}, nil
}

// evaluateFleet classifies every active asset and component of the owner.
// Each entity is evaluated independently; the fleet view is their union.
func (uc *ListStatusesUseCase) evaluateFleet(ctx context.Context, ownerID uint, evaluator *maintenance.Evaluator) ([]dto.EntityStatusDTO, error) {
	assets, err := uc.assetRepo.List(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "owner_id", ownerID, "error", err)
		return nil, err
	}

	components, err := uc.componentRepo.List(ctx, ownerID)
	if err != nil {
		uc.logger.Errorw("failed to list components", "owner_id", ownerID, "error", err)
		return nil, err
	}

	now := biztime.NowUTC()
	plans := make(map[uint]*maintenance.Plan)
	statuses := make([]dto.EntityStatusDTO, 0, len(assets)+len(components))

	for _, a := range assets {
		if !a.IsActive() {
			continue
		}
		eval, err := uc.evaluateEntity(ctx, ownerID, asset.KindAsset, a.ID(), a.PlanID(), plans, evaluator, now)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, dto.FromEvaluation(a.ID(), asset.KindAsset, eval))
	}

	for _, c := range components {
		if !c.IsActive() {
			continue
		}
		eval, err := uc.evaluateEntity(ctx, ownerID, asset.KindComponent, c.ID(), c.PlanID(), plans, evaluator, now)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, dto.FromEvaluation(c.ID(), asset.KindComponent, eval))
	}

	return statuses, nil
}

func (uc *ListStatusesUseCase) evaluateEntity(
	ctx context.Context,
	ownerID uint,
	kind asset.EntityKind,
	entityID uint,
	planID *uint,
	plans map[uint]*maintenance.Plan,
	evaluator *maintenance.Evaluator,
	now time.Time,
) (maintenance.Evaluation, error) {
	var plan *maintenance.Plan
	if planID != nil {
		cached, ok := plans[*planID]
		if !ok {
			loaded, err := uc.planRepo.GetByID(ctx, *planID, ownerID)
			if err != nil {
				uc.logger.Errorw("failed to load plan", "plan_id", *planID, "error", err)
				return maintenance.Evaluation{}, err
			}
			plans[*planID] = loaded
			cached = loaded
		}
		plan = cached
	}

	snap, err := uc.ledger.GetCounters(ctx, kind, entityID)
	if err != nil {
		uc.logger.Errorw("failed to read usage counters", "kind", kind.String(), "entity_id", entityID, "error", err)
		return maintenance.Evaluation{}, err
	}

	return evaluator.Evaluate(snap, plan, now), nil
}
