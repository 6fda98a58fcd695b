// Package brokerrepo persists brokers in the brokers table.
package brokerrepo

import (
	"drayage/internal/core/domain/model/broker"
	"drayage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BrokerDTO represents the database structure for persisting brokers.
type BrokerDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status  int        `gorm:"type:smallint;not null"`
}

func (BrokerDTO) TableName() string {
	return "brokers"
}

// AddressDTO is the postal address embedded in the broker row.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(255);not null"`
	State   string `gorm:"type:char(2);not null"`
	Zipcode string `gorm:"type:varchar(10);not null"`
}

func fromDomain(aggregate *broker.Broker) BrokerDTO {
	addr := aggregate.Address()
	return BrokerDTO{
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

func toDomain(dto BrokerDTO) (*broker.Broker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return broker.RestoreBroker(id, dto.Name, addr, broker.Status(dto.Status))
}
