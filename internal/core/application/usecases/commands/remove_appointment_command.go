package commands

import (
	"errors"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrRemoveAppointmentCommandIsNotConstructed = errors.New(
		"RemoveAppointmentCommand must be created via NewRemoveAppointmentCommand constructor",
	)
)

// RemoveAppointmentCommand clears the appointment of a task that has not started.
type RemoveAppointmentCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	priority   int

	guard guard.ConstructorGuard
}

func NewRemoveAppointmentCommand(dispatchID kernel.UUID, priority int) (RemoveAppointmentCommand, error) {
	if err := errors.Join(dispatchID.Validate(), validatePriority(priority)); err != nil {
		return RemoveAppointmentCommand{}, err
	}

	return RemoveAppointmentCommand{
		dispatchID: dispatchID,
		priority:   priority,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAppointmentCommandIsNotConstructed)
}

func (c RemoveAppointmentCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c RemoveAppointmentCommand) Priority() int {
	return c.priority
}
