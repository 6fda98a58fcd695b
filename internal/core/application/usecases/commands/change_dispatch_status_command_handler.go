package commands

import (
	"context"
	"errors"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/driver"
	"drayage/internal/core/domain/services"
	"drayage/internal/core/ports"
	"drayage/internal/pkg/errs"
)

// ChangeDispatchStatusCommandHandler runs a dispatch macro transition through the
// DispatchCoordinator and writes the dispatch and its driver in one transaction.
//
// Every attempt that reaches the coordinator is counted on the metrics port as
// success, rejected (a domain rule said no) or failed (anything else).
type ChangeDispatchStatusCommandHandler struct {
	uowFactory UoWFactory
	metrics    ports.DispatchMetrics
}

// NewChangeDispatchStatusCommandHandler creates a handler for dispatch macro transitions.
func NewChangeDispatchStatusCommandHandler(
	uowFactory UoWFactory,
	metrics ports.DispatchMetrics,
) ChangeDispatchStatusCommandHandler {
	return ChangeDispatchStatusCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

// Handle loads the dispatch and, when one is involved, the driver; then applies the action.
//
// The driver is the one named by the command, falling back to the dispatch's driver.
// A paused dispatch is cancelled without a driver even if one was re-assigned.
func (h ChangeDispatchStatusCommandHandler) Handle(ctx context.Context, command ChangeDispatchStatusCommand) error {
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

	driverID := command.DriverID()
	pausedCancel := command.Action() == CancelDispatch && d.Status() == dispatch.Paused
	if driverID == nil && !pausedCancel {
		driverID = d.DriverRef()
	}

	var loaded *driver.Driver
	if driverID != nil {
		if loaded, err = driverRepo.Get(ctx, *driverID); err != nil {
			return err
		}
	}

	err = h.apply(command.Action(), d, loaded)
	h.observe(command.Action(), err)
	if err != nil {
		return err
	}

	if err = dispatchRepo.Update(ctx, d); err != nil {
		return err
	}

	if loaded != nil {
		if err = driverRepo.Update(ctx, loaded); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h ChangeDispatchStatusCommandHandler) apply(
	action DispatchAction,
	d *dispatch.Dispatch,
	loaded *driver.Driver,
) error {
	// a nil *driver.Driver must reach the coordinator as a nil interface
	var drv services.Driver
	if loaded != nil {
		drv = loaded
	}

	coordinator := services.NewDispatchCoordinator()
	switch action {
	case StartDispatch:
		return coordinator.StartDispatch(d, drv)
	case PauseDispatch:
		return coordinator.PauseDispatch(d, drv)
	case ResumeDispatch:
		return coordinator.ResumeDispatch(d, drv)
	case CompleteDispatch:
		return coordinator.CompleteDispatch(d, drv)
	case CancelDispatch:
		return coordinator.CancelDispatch(d, drv)
	case RevertDispatchToDraft:
		return coordinator.RevertDispatchToDraft(d, drv)
	default:
		return errs.NewValueIsInvalidError("action")
	}
}

func (h ChangeDispatchStatusCommandHandler) observe(action DispatchAction, err error) {
	if errors.Is(err, services.ErrDispatchStartRolledBack) {
		h.metrics.ObserveStartRollback()
	}
	h.metrics.ObserveTransition(string(action), Outcome(err))
}

// Outcome classifies the result of a domain operation for metrics labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return ports.OutcomeSuccess
	case errors.Is(err, services.ErrDispatchStartRolledBack),
		errors.Is(err, services.ErrDispatchResumeRolledBack):
		return ports.OutcomeFailed
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrBusinessRuleViolation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ports.OutcomeRejected
	default:
		return ports.OutcomeFailed
	}
}
