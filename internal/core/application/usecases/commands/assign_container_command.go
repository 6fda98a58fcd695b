package commands

import (
	"errors"
	"fmt"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

var (
	ErrAssignContainerCommandIsNotConstructed = errors.New(
		"AssignContainerCommand must be created via NewAssignContainerCommand constructor",
	)
)

// AssignContainerCommand puts one of the dispatch containers on a set of tasks.
//
// Example:
//
//	cmd, err := NewAssignContainerCommand(dispatchID, "MSCU7654321", []int{2, 3})
type AssignContainerCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	container  dispatch.Container
	priorities []int

	guard guard.ConstructorGuard
}

func NewAssignContainerCommand(dispatchID kernel.UUID, container string, priorities []int) (AssignContainerCommand, error) {
	cmd := AssignContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	parsed, containerErr := dispatch.NewContainer(container)
	if err := errors.Join(
		dispatchID.Validate(),
		containerErr,
		validatePriorities(priorities),
	); err != nil {
		return AssignContainerCommand{}, err
	}

	cmd.dispatchID = dispatchID
	cmd.container = parsed
	cmd.priorities = append([]int(nil), priorities...)

	return cmd, nil
}

func (c AssignContainerCommand) Validate() error {
	return c.guard.Validate(ErrAssignContainerCommandIsNotConstructed)
}

func (c AssignContainerCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c AssignContainerCommand) Container() dispatch.Container {
	return c.container
}

func (c AssignContainerCommand) Priorities() []int {
	return append([]int(nil), c.priorities...)
}

func validatePriorities(priorities []int) error {
	if len(priorities) == 0 {
		return errs.NewValueIsRequiredError("priorities")
	}
	for _, p := range priorities {
		if err := validatePriority(p); err != nil {
			return fmt.Errorf("priorities: %w", err)
		}
	}
	return nil
}
