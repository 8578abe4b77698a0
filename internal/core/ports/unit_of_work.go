package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary spanning the quote and counter stores.
// Callers manage Begin, Commit and Rollback explicitly.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	// QuoteRepository is bound to the transaction started by Begin, if any.
	QuoteRepository() QuoteRepository

	// CounterRepository is bound to the transaction started by Begin, if any.
	CounterRepository() CounterRepository
}
