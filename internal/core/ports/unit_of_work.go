package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
// Domain events raised by tracked aggregates are written to the outbox on Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories are bound to the transaction started by Begin, or to the
	// plain connection when no transaction is active.
	OrderRepository() OrderRepository
	UserRepository() UserRepository
	LocationRepository() LocationRepository
	OutboxRepository() OutboxRepository
}
