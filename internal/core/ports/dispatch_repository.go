// Package ports defines the contracts between the dispatch core and its adapters:
// repositories and unit of work for persistence, plus the metrics sink.
package ports

import (
	"context"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
)

// DispatchRepository defines the persistence contract for dispatch aggregates.
// A dispatch is stored together with its containers and its plan; tasks are never
// loaded or saved on their own.
type DispatchRepository interface {
	// Add persists a new dispatch with its containers and tasks.
	// Returns errs.ObjectAlreadyExistsError if the ID is taken.
	Add(ctx context.Context, aggregate *dispatch.Dispatch) error

	// Update persists the header and replaces the stored containers and tasks.
	// Returns errs.ObjectNotFoundError if the dispatch does not exist.
	Update(ctx context.Context, aggregate *dispatch.Dispatch) error

	// Get retrieves a dispatch with its plan in priority order.
	// Returns errs.ObjectNotFoundError if the dispatch does not exist.
	Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error)

	// Delete removes a dispatch with its containers and tasks.
	Delete(ctx context.Context, id kernel.UUID) error
}
