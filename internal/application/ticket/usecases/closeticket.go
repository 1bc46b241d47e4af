package usecases

import (
	"context"
	"fmt"

	"skymaint/internal/application/ticket/dto"
	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/shared/events"
	"skymaint/internal/domain/ticket"
	vo "skymaint/internal/domain/ticket/valueobjects"
	"skymaint/internal/shared/biztime"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
)

type CloseTicketCommand struct {
	OwnerID  uint
	ActorID  uint
	TicketID uint
	Note     string
}

type CloseTicketResult struct {
	Ticket dto.TicketDTO
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

type CloseTicketUseCase struct {
	ticketRepo      ticket.Repository
	eventRepo       ticket.EventRepository
	ledger          asset.UsageLedger
	txRunner        TransactionRunner
	cache           StatusCacheInvalidator
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.Repository,
	eventRepo ticket.EventRepository,
	ledger asset.UsageLedger,
	txRunner TransactionRunner,
	cache StatusCacheInvalidator,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo:      ticketRepo,
		eventRepo:       eventRepo,
		ledger:          ledger,
		txRunner:        txRunner,
		cache:           cache,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	uc.logger.Infow("executing close ticket use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid close ticket command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if t.Status().IsClosed() {
		return nil, errors.NewInvalidStateError(fmt.Sprintf("ticket %s is already closed", t.Number()))
	}

	now := biztime.NowUTC()

	// Status update, audit event, and counter resets commit together;
	// closed-without-reset must be impossible.
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := t.Close(cmd.Note, now); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		event, err := ticket.NewEvent(t.ID(), vo.EventClosed, cmd.Note, cmd.ActorID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.eventRepo.Append(txCtx, event); err != nil {
			return err
		}

		return resetCounters(txCtx, uc.ledger, t, now)
	})
	if err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, cmd.OwnerID); err != nil {
			uc.logger.Warnw("failed to invalidate status cache", "owner_id", cmd.OwnerID, "error", err)
		}
	}

	if err := uc.eventDispatcher.Publish(ticket.NewTicketClosedEvent(t, cmd.ActorID)); err != nil {
		uc.logger.Warnw("failed to publish ticket closed event", "error", err)
	}

	uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "number", t.Number())

	return &CloseTicketResult{Ticket: dto.FromTicket(t)}, nil
}

func (uc *CloseTicketUseCase) validateCommand(cmd CloseTicketCommand) error {
	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	return nil
}
