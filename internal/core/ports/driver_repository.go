package ports

import (
	"context"

	"drayage/internal/core/domain/model/driver"
	"drayage/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists a status change of an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its identifier.
	// Returns errs.ObjectNotFoundError if the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
