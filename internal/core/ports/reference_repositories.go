package ports

import (
	"context"

	"drayage/internal/core/domain/model/broker"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/core/domain/model/location"
)

// BrokerRepository defines the persistence contract for brokers.
type BrokerRepository interface {
	Add(ctx context.Context, aggregate *broker.Broker) error
	Update(ctx context.Context, aggregate *broker.Broker) error
	Get(ctx context.Context, id kernel.UUID) (*broker.Broker, error)
}

// LocationRepository defines the persistence contract for locations.
type LocationRepository interface {
	Add(ctx context.Context, aggregate *location.Location) error
	Update(ctx context.Context, aggregate *location.Location) error
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)
}
