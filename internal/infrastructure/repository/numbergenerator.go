package repository

import (
	"context"
	"fmt"
	"time"

	"skymaint/internal/domain/ticket"
)

// DBNumberGenerator derives the next daily sequence from the ticket count
// of the current UTC day. The unique index on the number column catches the
// rare same-millisecond race; callers see it as a storage failure and retry.
type DBNumberGenerator struct {
	ticketRepo ticket.Repository
}

func NewDBNumberGenerator(ticketRepo ticket.Repository) *DBNumberGenerator {
	return &DBNumberGenerator{ticketRepo: ticketRepo}
}

func (g *DBNumberGenerator) Generate(ctx context.Context) (string, error) {
	dateKey := time.Now().UTC().Format("20060102")

	count, err := g.ticketRepo.CountByDate(ctx, dateKey)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("M-%s-%04d", dateKey, count+1), nil
}
