package commands

import (
	"context"
	"drayage/internal/core/domain/services"
)

// AssignDriverCommandHandler references a driver from a dispatch through the DispatchCoordinator.
// The driver itself does not change; only the dispatch row is written.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	cmd, _ := NewAssignDriverCommand(dispatchID, driverID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrInvalidTransition) {
//	    // the dispatch is in progress or closed
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the dispatch and the driver, assigns and persists the dispatch.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
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

	dispatchRepo := uow.DispatchRepository()
	driverRepo := uow.DriverRepository()

	d, err := dispatchRepo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	drv, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = services.NewDispatchCoordinator().AssignDriver(d, drv); err != nil {
		return err
	}

	if err = dispatchRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
