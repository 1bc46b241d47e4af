package usecases

import (
	"context"

	"skymaint/internal/application/ticket/dto"
	"skymaint/internal/domain/ticket"
	vo "skymaint/internal/domain/ticket/valueobjects"
	"skymaint/internal/shared/errors"
	"skymaint/internal/shared/logger"
)

type ListTicketsQuery struct {
	OwnerID    uint
	Status     string
	Type       string
	Priority   string
	AssetID    *uint
	AssigneeID *uint
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets []dto.TicketDTO
	Total   int64
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}

	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	tickets, total, err := uc.ticketRepo.List(ctx, query.OwnerID, filter, page, pageSize)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "owner_id", query.OwnerID, "error", err)
		return nil, err
	}

	items := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.FromTicket(t))
	}

	return &ListTicketsResult{Tickets: items, Total: total}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	var filter ticket.Filter

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Type != "" {
		ticketType, err := vo.NewType(query.Type)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Type = &ticketType
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	filter.AssetID = query.AssetID
	filter.AssigneeID = query.AssigneeID

	return filter, nil
}
