package commands

import (
	"errors"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrRemoveTaskCommandIsNotConstructed = errors.New(
		"RemoveTaskCommand must be created via NewRemoveTaskCommand constructor",
	)
)

// RemoveTaskCommand drops the task at a priority from a dispatch plan.
type RemoveTaskCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	priority   int

	guard guard.ConstructorGuard
}

func NewRemoveTaskCommand(dispatchID kernel.UUID, priority int) (RemoveTaskCommand, error) {
	if err := errors.Join(dispatchID.Validate(), validatePriority(priority)); err != nil {
		return RemoveTaskCommand{}, err
	}

	return RemoveTaskCommand{
		dispatchID: dispatchID,
		priority:   priority,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveTaskCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTaskCommandIsNotConstructed)
}

func (c RemoveTaskCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c RemoveTaskCommand) Priority() int {
	return c.priority
}
