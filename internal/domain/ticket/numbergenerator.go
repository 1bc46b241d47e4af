package ticket

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// NumberGenerator issues human-readable ticket numbers (M-YYYYMMDD-NNNN).
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator keeps a per-day in-memory counter. Suitable for a
// single process; the persistence-backed generator supersedes it in server
// deployments.
type DefaultNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := time.Now().UTC().Format("20060102")

	counter := g.counters[dateKey]
	counter++
	g.counters[dateKey] = counter

	return fmt.Sprintf("M-%s-%04d", dateKey, counter), nil
}
