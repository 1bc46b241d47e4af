package usecases

import (
	"context"
	"fmt"

	"skymaint/internal/application/ticket/dto"
	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/maintenance"
	"skymaint/internal/domain/shared/events"
	"skymaint/internal/domain/ticket"
	vo "skymaint/internal/domain/ticket/valueobjects"
	"skymaint/internal/shared/biztime"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
)

type CreateTicketCommand struct {
	OwnerID      uint
	ActorID      uint
	AssetID      uint
	ComponentIDs []uint
	Type         string
	Priority     string
	AssigneeID   *uint
	Note         string
}

type CreateTicketResult struct {
	Ticket dto.TicketDTO
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreateTicketUseCase struct {
	ticketRepo      ticket.Repository
	eventRepo       ticket.EventRepository
	assetRepo       asset.AssetRepository
	componentRepo   asset.ComponentRepository
	planRepo        maintenance.PlanRepository
	ledger          asset.UsageLedger
	numberGen       ticket.NumberGenerator
	evaluator       *maintenance.Evaluator
	txRunner        TransactionRunner
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	eventRepo ticket.EventRepository,
	assetRepo asset.AssetRepository,
	componentRepo asset.ComponentRepository,
	planRepo maintenance.PlanRepository,
	ledger asset.UsageLedger,
	numberGen ticket.NumberGenerator,
	evaluator *maintenance.Evaluator,
	txRunner TransactionRunner,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:      ticketRepo,
		eventRepo:       eventRepo,
		assetRepo:       assetRepo,
		componentRepo:   componentRepo,
		planRepo:        planRepo,
		ledger:          ledger,
		numberGen:       numberGen,
		evaluator:       evaluator,
		txRunner:        txRunner,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "owner_id", cmd.OwnerID, "asset_id", cmd.AssetID)

	ticketType, priority, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	a, err := uc.assetRepo.GetByID(ctx, cmd.AssetID, cmd.OwnerID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidReferenceError(fmt.Sprintf("asset %d not found", cmd.AssetID))
		}
		uc.logger.Errorw("failed to get asset", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	if err := uc.checkComponents(ctx, cmd, a); err != nil {
		return nil, err
	}

	autoReason := uc.buildAutoReason(ctx, a)

	t, err := ticket.NewTicket(cmd.OwnerID, cmd.AssetID, cmd.ComponentIDs, ticketType, priority, cmd.AssigneeID, autoReason)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	number, err := uc.numberGen.Generate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewStorageError("failed to generate ticket number", err)
	}
	if err := t.SetNumber(number); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return err
		}

		message := cmd.Note
		if message == "" {
			message = fmt.Sprintf("ticket %s created", t.Number())
		}
		event, err := ticket.NewEvent(t.ID(), vo.EventCreated, message, cmd.ActorID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.eventRepo.Append(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "asset_id", cmd.AssetID, "error", err)
		return nil, err
	}

	if err := uc.eventDispatcher.Publish(ticket.NewTicketCreatedEvent(t, cmd.ActorID)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "error", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "number", t.Number())

	return &CreateTicketResult{Ticket: dto.FromTicket(t)}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) (vo.Type, vo.Priority, error) {
	if cmd.OwnerID == 0 {
		return "", "", errors.NewValidationError("owner ID is required")
	}
	if cmd.ActorID == 0 {
		return "", "", errors.NewValidationError("actor ID is required")
	}
	if cmd.AssetID == 0 {
		return "", "", errors.NewValidationError("asset ID is required")
	}

	ticketType, err := vo.NewType(cmd.Type)
	if err != nil {
		return "", "", errors.NewValidationError(err.Error())
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return "", "", errors.NewValidationError(err.Error())
	}

	return ticketType, priority, nil
}

func (uc *CreateTicketUseCase) checkComponents(ctx context.Context, cmd CreateTicketCommand, a *asset.Asset) error {
	if len(cmd.ComponentIDs) == 0 {
		return nil
	}

	components, err := uc.componentRepo.ListByIDs(ctx, cmd.ComponentIDs, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to list components", "error", err)
		return err
	}

	found := make(map[uint]*asset.Component, len(components))
	for _, c := range components {
		found[c.ID()] = c
	}

	for _, cid := range cmd.ComponentIDs {
		c, ok := found[cid]
		if !ok {
			return errors.NewInvalidReferenceError(fmt.Sprintf("component %d not found", cid))
		}
		if !c.BelongsTo(a.ID()) {
			return errors.NewInvalidReferenceError(fmt.Sprintf("component %d does not belong to asset %d", cid, a.ID()))
		}
	}

	return nil
}

// buildAutoReason snapshots the asset's currently triggered dimensions.
// A failed lookup degrades to an empty reason set; creation must not fail
// because the evaluation inputs were momentarily unavailable.
func (uc *CreateTicketUseCase) buildAutoReason(ctx context.Context, a *asset.Asset) []ticket.ReasonEntry {
	if a.PlanID() == nil {
		return nil
	}

	plan, err := uc.planRepo.GetByID(ctx, *a.PlanID(), a.OwnerID())
	if err != nil {
		uc.logger.Warnw("failed to load plan for auto reason", "plan_id", *a.PlanID(), "error", err)
		return nil
	}

	snap, err := uc.ledger.GetCounters(ctx, asset.KindAsset, a.ID())
	if err != nil {
		uc.logger.Warnw("failed to read usage counters for auto reason", "asset_id", a.ID(), "error", err)
		return nil
	}

	eval := uc.evaluator.Evaluate(snap, plan, biztime.NowUTC())

	reasons := make([]ticket.ReasonEntry, 0, len(eval.Triggered))
	for _, td := range eval.Triggered {
		reasons = append(reasons, ticket.ReasonEntry{
			Dimension: td.Dimension.String(),
			Consumed:  td.Consumed,
			Threshold: td.Threshold,
			Fraction:  td.Fraction,
		})
	}
	return reasons
}
