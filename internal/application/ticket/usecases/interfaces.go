package usecases

import "context"

// TransactionRunner executes a function inside one storage transaction.
// Every mutating use case runs its state change, event append, and (for
// closure) counter reset through this boundary so partial commits cannot
// happen.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatusCacheInvalidator drops cached fleet statuses for an owner. Closure
// resets usage counters, so the cached evaluation becomes stale.
type StatusCacheInvalidator interface {
	Invalidate(ctx context.Context, ownerID uint) error
}
