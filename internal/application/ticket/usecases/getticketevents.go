package usecases

import (
	"context"

	"skymaint/internal/application/ticket/dto"
	"skymaint/internal/domain/ticket"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
)

type GetTicketEventsQuery struct {
	OwnerID  uint
	TicketID uint
}

type GetTicketEventsResult struct {
	Events []dto.EventDTO
}

type GetTicketEventsExecutor interface {
	Execute(ctx context.Context, query GetTicketEventsQuery) (*GetTicketEventsResult, error)
}

type GetTicketEventsUseCase struct {
	ticketRepo ticket.Repository
	eventRepo  ticket.EventRepository
	logger     logger.Interface
}

func NewGetTicketEventsUseCase(
	ticketRepo ticket.Repository,
	eventRepo ticket.EventRepository,
	logger logger.Interface,
) *GetTicketEventsUseCase {
	return &GetTicketEventsUseCase{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
		logger:     logger,
	}
}

func (uc *GetTicketEventsUseCase) Execute(ctx context.Context, query GetTicketEventsQuery) (*GetTicketEventsResult, error) {
	if query.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	// Owner scoping happens on the ticket lookup; events are only reachable
	// through a ticket the caller owns.
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID, query.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	ticketEvents, err := uc.eventRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ticket events", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	items := make([]dto.EventDTO, 0, len(ticketEvents))
	for _, e := range ticketEvents {
		items = append(items, dto.FromEvent(e))
	}

	return &GetTicketEventsResult{Events: items}, nil
}
