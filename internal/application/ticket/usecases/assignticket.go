package usecases

import (
	"context"
	"fmt"

	"skymaint/internal/application/ticket/dto"
	"skymaint/internal/domain/shared/events"
	"skymaint/internal/domain/ticket"
	vo "skymaint/internal/domain/ticket/valueobjects"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
)

type AssignTicketCommand struct {
	OwnerID      uint
	ActorID      uint
	TicketID     uint
	TechnicianID uint
}

type AssignTicketResult struct {
	Ticket dto.TicketDTO
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type AssignTicketUseCase struct {
	ticketRepo      ticket.Repository
	eventRepo       ticket.EventRepository
	txRunner        TransactionRunner
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	eventRepo ticket.EventRepository,
	txRunner TransactionRunner,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:      ticketRepo,
		eventRepo:       eventRepo,
		txRunner:        txRunner,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case", "ticket_id", cmd.TicketID, "technician_id", cmd.TechnicianID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid assign ticket command", "error", err)
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

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := t.Assign(cmd.TechnicianID); err != nil {
			return errors.NewInvalidStateError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		event, err := ticket.NewEvent(
			t.ID(),
			vo.EventAssigned,
			fmt.Sprintf("assigned to technician %d", cmd.TechnicianID),
			cmd.ActorID,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.eventRepo.Append(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := uc.eventDispatcher.Publish(ticket.NewTicketAssignedEvent(t, cmd.TechnicianID, cmd.ActorID)); err != nil {
		uc.logger.Warnw("failed to publish ticket assigned event", "error", err)
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "technician_id", cmd.TechnicianID)

	return &AssignTicketResult{Ticket: dto.FromTicket(t)}, nil
}

func (uc *AssignTicketUseCase) validateCommand(cmd AssignTicketCommand) error {
	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.TechnicianID == 0 {
		return errors.NewValidationError("technician ID is required")
	}
	return nil
}
