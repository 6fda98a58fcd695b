package postgres

import (
	"drayage/internal/adapters/out/postgres/brokerrepo"
	"drayage/internal/adapters/out/postgres/dispatchrepo"
	"drayage/internal/adapters/out/postgres/driverrepo"
	"drayage/internal/adapters/out/postgres/locationrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&brokerrepo.BrokerDTO{},
		&locationrepo.LocationDTO{},
		&driverrepo.DriverDTO{},
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.ContainerDTO{},
		&dispatchrepo.TaskDTO{},
	)
}
