package commands

import (
	"errors"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrAddTaskCommandIsNotConstructed = errors.New(
		"AddTaskCommand must be created via NewAddTaskCommand constructor",
	)
)

// AddTaskCommand inserts a task at a priority of an existing plan.
// A priority past the end of the plan appends the task.
type AddTaskCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	priority   int
	task       PlannedTask

	guard guard.ConstructorGuard
}

func NewAddTaskCommand(dispatchID kernel.UUID, priority int, task PlannedTask) (AddTaskCommand, error) {
	if err := errors.Join(
		dispatchID.Validate(),
		validatePriority(priority),
		task.Instruction.Validate(),
	); err != nil {
		return AddTaskCommand{}, err
	}

	return AddTaskCommand{
		dispatchID: dispatchID,
		priority:   priority,
		task:       task,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddTaskCommand) Validate() error {
	return c.guard.Validate(ErrAddTaskCommandIsNotConstructed)
}

func (c AddTaskCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c AddTaskCommand) Priority() int {
	return c.priority
}

func (c AddTaskCommand) Task() PlannedTask {
	return c.task
}

// newTask builds the domain task requested by the command.
func (c AddTaskCommand) newTask() (*dispatch.Task, error) {
	return dispatch.NewTask(c.priority, c.task.Instruction, c.task.LocationID, c.task.Container, c.task.Appointment)
}
