package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// A coordinator call that changes a dispatch and a driver must run inside one
// UnitOfWork so both rows are written atomically.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Calling it after Commit returns an error, which deferred callers ignore.
	Rollback(ctx context.Context) error

	// DispatchRepository returns a repository bound to the current transaction.
	DispatchRepository() DispatchRepository

	// DriverRepository returns a repository bound to the current transaction.
	DriverRepository() DriverRepository

	// BrokerRepository returns a repository bound to the current transaction.
	BrokerRepository() BrokerRepository

	// LocationRepository returns a repository bound to the current transaction.
	LocationRepository() LocationRepository
}
