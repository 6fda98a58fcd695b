// Package locationrepo persists locations in the locations table.
package locationrepo

import (
	"drayage/internal/core/domain/model/location"
	"drayage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting locations.
type LocationDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status  int        `gorm:"type:smallint;not null"`
}

func (LocationDTO) TableName() string {
	return "locations"
}

// AddressDTO is the postal address embedded in the location row.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(255);not null"`
	State   string `gorm:"type:char(2);not null"`
	Zipcode string `gorm:"type:varchar(10);not null"`
}

func fromDomain(aggregate *location.Location) LocationDTO {
	addr := aggregate.Address()
	return LocationDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Address: AddressDTO{
			Street:  addr.Street(),
			City:    addr.City(),
			State:   addr.State(),
			Zipcode: addr.Zipcode(),
		},
		Status: int(aggregate.Status()),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(id, dto.Name, addr, location.Status(dto.Status))
}
