package commands

import (
	"errors"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrCreateLocationCommandIsNotConstructed = errors.New(
		"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
	)
)

// CreateLocationCommand registers a terminal, yard or customer site tasks can point at.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	name       string
	address    kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateLocationCommand(name string, address kernel.Address) (CreateLocationCommand, error) {
	if err := errors.Join(validateName(name), address.Validate()); err != nil {
		return CreateLocationCommand{}, err
	}

	return CreateLocationCommand{
		locationID: kernel.NewUUID(),
		name:       name,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

func (c CreateLocationCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c CreateLocationCommand) Name() string {
	return c.name
}

func (c CreateLocationCommand) Address() kernel.Address {
	return c.address
}
