package commands

import (
	"context"
)

type SetAppointmentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewSetAppointmentCommandHandler(uowFactory DispatchUoWFactory) SetAppointmentCommandHandler {
	return SetAppointmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetAppointmentCommandHandler) Handle(ctx context.Context, command SetAppointmentCommand) error {
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

	if err = d.SetAppointment(command.Priority(), command.Appointment()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
