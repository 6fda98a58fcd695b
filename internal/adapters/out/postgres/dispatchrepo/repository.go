package dispatchrepo

import (
	"context"

	"drayage/internal/adapters/out/postgres/pgerr"
	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDispatchRepository implements ports.DispatchRepository using GORM.
type GormDispatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDispatchRepository creates a new GORM dispatch repository.
func NewGormDispatchRepository(db *gorm.DB, tracker aggregateTracker) *GormDispatchRepository {
	return &GormDispatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the header, its containers and its tasks.
func (r *GormDispatchRepository) Add(ctx context.Context, aggregate *dispatch.Dispatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "dispatch", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the header and replaces every container and task row.
// Callers run it inside a unit of work so the replacement is atomic.
func (r *GormDispatchRepository) Update(ctx context.Context, aggregate *dispatch.Dispatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DispatchDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"broker_id": dto.BrokerID,
		"driver_id": dto.DriverID,
		"status":    dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dispatch", aggregate.ID().String())
	}

	if err := db.Where("dispatch_id = ?", dto.ID).Delete(&TaskDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("dispatch_id = ?", dto.ID).Delete(&ContainerDTO{}).Error; err != nil {
		return err
	}
	if err := db.Create(&dto.Containers).Error; err != nil {
		return err
	}
	if err := db.Create(&dto.Tasks).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads a dispatch with its containers in booking order and its plan in priority order.
func (r *GormDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DispatchDTO
	err := r.db.WithContext(ctx).
		Preload("Containers", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("priority") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgerr.Translate(err, "dispatch", id.String())
	}

	return toDomain(dto)
}

// Delete removes the dispatch; container and task rows follow by cascade.
func (r *GormDispatchRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DispatchDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dispatch", id.String())
	}

	return nil
}
