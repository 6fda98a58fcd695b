package brokerrepo

import (
	"context"

	"drayage/internal/adapters/out/postgres/pgerr"
	"drayage/internal/core/domain/model/broker"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBrokerRepository implements ports.BrokerRepository using GORM.
type GormBrokerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormBrokerRepository(db *gorm.DB, tracker aggregateTracker) *GormBrokerRepository {
	return &GormBrokerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBrokerRepository) Add(ctx context.Context, aggregate *broker.Broker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "broker", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBrokerRepository) Update(ctx context.Context, aggregate *broker.Broker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BrokerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":            dto.Name,
		"address_street":  dto.Address.Street,
		"address_city":    dto.Address.City,
		"address_state":   dto.Address.State,
		"address_zipcode": dto.Address.Zipcode,
		"status":          dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("broker", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBrokerRepository) Get(ctx context.Context, id kernel.UUID) (*broker.Broker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BrokerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "broker", id.String())
	}

	return toDomain(dto)
}
