package commands

import (
	"errors"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrCreateBrokerCommandIsNotConstructed = errors.New(
		"CreateBrokerCommand must be created via NewCreateBrokerCommand constructor",
	)
)

// CreateBrokerCommand registers a broker that can order dispatches.
type CreateBrokerCommand struct { //nolint:recvcheck //using for validation
	brokerID kernel.UUID
	name     string
	address  kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateBrokerCommand(name string, address kernel.Address) (CreateBrokerCommand, error) {
	if err := errors.Join(validateName(name), address.Validate()); err != nil {
		return CreateBrokerCommand{}, err
	}

	return CreateBrokerCommand{
		brokerID: kernel.NewUUID(),
		name:     name,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBrokerCommand) Validate() error {
	return c.guard.Validate(ErrCreateBrokerCommandIsNotConstructed)
}

func (c CreateBrokerCommand) BrokerID() kernel.UUID {
	return c.brokerID
}

func (c CreateBrokerCommand) Name() string {
	return c.name
}

func (c CreateBrokerCommand) Address() kernel.Address {
	return c.address
}
