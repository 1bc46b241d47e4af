package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skymaint/internal/application/ticket/dto"
	"skymaint/internal/domain/asset"
	"skymaint/internal/domain/shared/events"
	"skymaint/internal/domain/ticket"
	vo "skymaint/internal/domain/ticket/valueobjects"
	"skymaint/internal/shared/biztime"
	"skymaint/internal/shared/constants"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
)

type AddReportCommand struct {
	OwnerID   uint
	ActorID   uint
	TicketID  uint
	Text      string
	WorkStart *time.Time
	WorkEnd   *time.Time
	Close     bool
}

type AddReportResult struct {
	Ticket dto.TicketDTO
}

type AddReportExecutor interface {
	Execute(ctx context.Context, cmd AddReportCommand) (*AddReportResult, error)
}

type AddReportUseCase struct {
	ticketRepo      ticket.Repository
	eventRepo       ticket.EventRepository
	ledger          asset.UsageLedger
	txRunner        TransactionRunner
	cache           StatusCacheInvalidator
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewAddReportUseCase(
	ticketRepo ticket.Repository,
	eventRepo ticket.EventRepository,
	ledger asset.UsageLedger,
	txRunner TransactionRunner,
	cache StatusCacheInvalidator,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AddReportUseCase {
	return &AddReportUseCase{
		ticketRepo:      ticketRepo,
		eventRepo:       eventRepo,
		ledger:          ledger,
		txRunner:        txRunner,
		cache:           cache,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *AddReportUseCase) Execute(ctx context.Context, cmd AddReportCommand) (*AddReportResult, error) {
	uc.logger.Infow("executing add report use case", "ticket_id", cmd.TicketID, "close", cmd.Close)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid add report command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if t.Status().IsClosed() {
		return nil, errors.NewInvalidStateError(fmt.Sprintf("ticket %s is closed", t.Number()))
	}

	now := biztime.NowUTC()

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if cmd.Close {
			if err := t.Close(cmd.Text, now); err != nil {
				return errors.NewInvalidStateError(err.Error())
			}
		} else if err := t.StartWork(); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		event, err := ticket.NewEvent(t.ID(), vo.EventReport, uc.eventMessage(cmd), cmd.ActorID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.eventRepo.Append(txCtx, event); err != nil {
			return err
		}

		if cmd.Close {
			return resetCounters(txCtx, uc.ledger, t, now)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to add report", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if cmd.Close && uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, cmd.OwnerID); err != nil {
			uc.logger.Warnw("failed to invalidate status cache", "owner_id", cmd.OwnerID, "error", err)
		}
	}

	if err := uc.eventDispatcher.Publish(ticket.NewTicketReportedEvent(t, cmd.Text, cmd.Close, cmd.ActorID)); err != nil {
		uc.logger.Warnw("failed to publish ticket reported event", "error", err)
	}

	uc.logger.Infow("report added", "ticket_id", t.ID(), "status", t.Status().String())

	return &AddReportResult{Ticket: dto.FromTicket(t)}, nil
}

func (uc *AddReportUseCase) validateCommand(cmd AddReportCommand) error {
	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if strings.TrimSpace(cmd.Text) == "" {
		return errors.NewValidationError("report text is required")
	}
	if len(cmd.Text) > constants.MaxNoteLength {
		return errors.NewValidationError(fmt.Sprintf("report text exceeds maximum length of %d characters", constants.MaxNoteLength))
	}
	if cmd.WorkStart != nil && cmd.WorkEnd != nil && cmd.WorkEnd.Before(*cmd.WorkStart) {
		return errors.NewValidationError("work end cannot precede work start")
	}
	return nil
}

func (uc *AddReportUseCase) eventMessage(cmd AddReportCommand) string {
	msg := cmd.Text
	if cmd.WorkStart != nil && cmd.WorkEnd != nil {
		msg = fmt.Sprintf("%s (work %s - %s)",
			msg,
			cmd.WorkStart.UTC().Format(time.RFC3339),
			cmd.WorkEnd.UTC().Format(time.RFC3339),
		)
	}
	return msg
}
