package commands

import (
	"context"

	"drayage/internal/core/domain/model/driver"
	"drayage/internal/pkg/errs"
)

// ChangeDriverAvailabilityCommandHandler applies a dispatcher-requested driver status change.
type ChangeDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewChangeDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) ChangeDriverAvailabilityCommandHandler {
	return ChangeDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeDriverAvailabilityCommandHandler) Handle(ctx context.Context, command ChangeDriverAvailabilityCommand) error {
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

	repo := uow.DriverRepository()

	d, err := repo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = applyAvailabilityAction(d, command.Action()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyAvailabilityAction(d *driver.Driver, action AvailabilityAction) error {
	switch action {
	case SitOutDriver:
		return d.SitOut()
	case MakeDriverAvailable:
		return d.MakeAvailable()
	case DeactivateDriver:
		return d.Deactivate()
	case ReactivateDriver:
		return d.Reactivate()
	default:
		return errs.NewValueIsInvalidError("action")
	}
}
