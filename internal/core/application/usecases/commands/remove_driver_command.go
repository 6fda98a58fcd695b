package commands

import (
	"errors"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrRemoveDriverCommandIsNotConstructed = errors.New(
		"RemoveDriverCommand must be created via NewRemoveDriverCommand constructor",
	)
)

// RemoveDriverCommand requests that a dispatch forget its driver.
type RemoveDriverCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveDriverCommand(dispatchID kernel.UUID) (RemoveDriverCommand, error) {
	if err := dispatchID.Validate(); err != nil {
		return RemoveDriverCommand{}, err
	}

	return RemoveDriverCommand{
		dispatchID: dispatchID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveDriverCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDriverCommandIsNotConstructed)
}

func (c RemoveDriverCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}
