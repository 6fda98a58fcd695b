package commands

import (
	"errors"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrSetAppointmentCommandIsNotConstructed = errors.New(
		"SetAppointmentCommand must be created via NewSetAppointmentCommand constructor",
	)
)

// SetAppointmentCommand replaces the appointment of a task that has not started.
type SetAppointmentCommand struct { //nolint:recvcheck //using for validation
	dispatchID  kernel.UUID
	priority    int
	appointment dispatch.Appointment

	guard guard.ConstructorGuard
}

func NewSetAppointmentCommand(
	dispatchID kernel.UUID,
	priority int,
	appointment dispatch.Appointment,
) (SetAppointmentCommand, error) {
	if err := errors.Join(
		dispatchID.Validate(),
		validatePriority(priority),
		appointment.Validate(),
	); err != nil {
		return SetAppointmentCommand{}, err
	}

	return SetAppointmentCommand{
		dispatchID:  dispatchID,
		priority:    priority,
		appointment: appointment,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SetAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrSetAppointmentCommandIsNotConstructed)
}

func (c SetAppointmentCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c SetAppointmentCommand) Priority() int {
	return c.priority
}

func (c SetAppointmentCommand) Appointment() dispatch.Appointment {
	return c.appointment
}
