package commands

import (
	"context"
)

// RemoveAppointmentCommandHandler clears a task appointment.
// Once a dispatch left draft its last appointment cannot be removed.
type RemoveAppointmentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewRemoveAppointmentCommandHandler(uowFactory DispatchUoWFactory) RemoveAppointmentCommandHandler {
	return RemoveAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveAppointmentCommandHandler) Handle(ctx context.Context, command RemoveAppointmentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DispatchRepository()

	d, err := repo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	if err = d.RemoveAppointment(command.Priority()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
