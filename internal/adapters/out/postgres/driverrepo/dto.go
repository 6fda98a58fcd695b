// Package driverrepo persists driver aggregates in the drivers table.
package driverrepo

import (
	"drayage/internal/core/domain/model/driver"
	"drayage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Status int       `gorm:"type:smallint;not null;index"`
}

// TableName overrides GORM's default "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:     d.ID().Bytes(),
		Name:   d.Name(),
		Status: int(d.Status()),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, driver.Status(dto.Status))
}
