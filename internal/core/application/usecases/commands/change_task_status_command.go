package commands

import (
	"errors"
	"strings"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

// TaskAction names a progress change of one task.
type TaskAction string

const (
	StartTask    TaskAction = "start"
	CompleteTask TaskAction = "complete"
	StopOffTask  TaskAction = "stop-off"
	RevertTask   TaskAction = "revert"
)

// ParseTaskAction is case-insensitive.
func ParseTaskAction(s string) (TaskAction, error) {
	switch action := TaskAction(strings.ToLower(strings.TrimSpace(s))); action {
	case StartTask, CompleteTask, StopOffTask, RevertTask:
		return action, nil
	default:
		return "", errs.NewValueIsInvalidError("action")
	}
}

var (
	ErrChangeTaskStatusCommandIsNotConstructed = errors.New(
		"ChangeTaskStatusCommand must be created via NewChangeTaskStatusCommand constructor",
	)
)

// ChangeTaskStatusCommand moves one task of an in-progress dispatch.
type ChangeTaskStatusCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	priority   int
	action     TaskAction

	guard guard.ConstructorGuard
}

func NewChangeTaskStatusCommand(dispatchID kernel.UUID, priority int, action string) (ChangeTaskStatusCommand, error) {
	cmd := ChangeTaskStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	parsed, actionErr := ParseTaskAction(action)
	if err := errors.Join(
		dispatchID.Validate(),
		validatePriority(priority),
		actionErr,
	); err != nil {
		return ChangeTaskStatusCommand{}, err
	}

	cmd.dispatchID = dispatchID
	cmd.priority = priority
	cmd.action = parsed

	return cmd, nil
}

func (c ChangeTaskStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTaskStatusCommandIsNotConstructed)
}

func (c ChangeTaskStatusCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c ChangeTaskStatusCommand) Priority() int {
	return c.priority
}

func (c ChangeTaskStatusCommand) Action() TaskAction {
	return c.action
}
