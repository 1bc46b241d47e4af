package usecases

import (
	"context"

	"skymaint/internal/application/ticket/dto"
	"skymaint/internal/domain/ticket"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
)

type GetTicketQuery struct {
	OwnerID  uint
	TicketID uint
}

type GetTicketResult struct {
	Ticket      dto.TicketDTO
	Attachments []dto.AttachmentDTO
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type GetTicketUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	if query.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	items := make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		items = append(items, dto.FromAttachment(a))
	}

	return &GetTicketResult{
		Ticket:      dto.FromTicket(t),
		Attachments: items,
	}, nil
}
