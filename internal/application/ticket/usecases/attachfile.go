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

type AttachFileCommand struct {
	OwnerID     uint
	ActorID     uint
	TicketID    uint
	FileRef     string
	Description string
}

type AttachFileResult struct {
	Attachment dto.AttachmentDTO
}

type AttachFileExecutor interface {
	Execute(ctx context.Context, cmd AttachFileCommand) (*AttachFileResult, error)
}

type AttachFileUseCase struct {
	ticketRepo      ticket.Repository
	eventRepo       ticket.EventRepository
	attachmentRepo  ticket.AttachmentRepository
	txRunner        TransactionRunner
	eventDispatcher events.EventDispatcher
	logger          logger.Interface
}

func NewAttachFileUseCase(
	ticketRepo ticket.Repository,
	eventRepo ticket.EventRepository,
	attachmentRepo ticket.AttachmentRepository,
	txRunner TransactionRunner,
	eventDispatcher events.EventDispatcher,
	logger logger.Interface,
) *AttachFileUseCase {
	return &AttachFileUseCase{
		ticketRepo:      ticketRepo,
		eventRepo:       eventRepo,
		attachmentRepo:  attachmentRepo,
		txRunner:        txRunner,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (uc *AttachFileUseCase) Execute(ctx context.Context, cmd AttachFileCommand) (*AttachFileResult, error) {
	uc.logger.Infow("executing attach file use case", "ticket_id", cmd.TicketID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid attach file command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	attachment, err := ticket.NewAttachment(t.ID(), cmd.Description, cmd.FileRef, cmd.ActorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Attaching never changes ticket status, but the attachment row and its
	// audit event still commit together.
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.attachmentRepo.Save(txCtx, attachment); err != nil {
			return err
		}

		event, err := ticket.NewEvent(
			t.ID(),
			vo.EventAttachment,
			fmt.Sprintf("attachment added: %s", cmd.FileRef),
			cmd.ActorID,
		)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.eventRepo.Append(txCtx, event)
	})
	if err != nil {
		uc.logger.Errorw("failed to attach file", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := uc.eventDispatcher.Publish(ticket.NewTicketAttachmentAddedEvent(t, cmd.FileRef, cmd.ActorID)); err != nil {
		uc.logger.Warnw("failed to publish attachment event", "error", err)
	}

	uc.logger.Infow("file attached", "ticket_id", t.ID(), "file_ref", cmd.FileRef)

	return &AttachFileResult{Attachment: dto.FromAttachment(attachment)}, nil
}

func (uc *AttachFileUseCase) validateCommand(cmd AttachFileCommand) error {
	if cmd.OwnerID == 0 {
		return errors.NewValidationError("owner ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.FileRef == "" {
		return errors.NewValidationError("file reference is required")
	}
	return nil
}
