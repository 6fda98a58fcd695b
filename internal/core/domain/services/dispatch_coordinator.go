package services

import (
	"errors"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/driver"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
)

var (
	// ErrDriverMismatch is returned when the driver passed in is not the one assigned to the dispatch.
	ErrDriverMismatch = errs.NewBusinessRuleViolationError("the driver is not the one assigned to the dispatch")
	// ErrDriverRequired is returned when cancelling an in-progress dispatch without its driver.
	ErrDriverRequired = errs.NewBusinessRuleViolationError("cancelling a dispatch in progress requires its driver")
	// ErrDriverNotExpected is returned when a driver is passed in to cancel a paused dispatch.
	ErrDriverNotExpected = errs.NewBusinessRuleViolationError("a paused dispatch has no operating driver to release")

	// ErrDispatchStartRolledBack is joined with the driver error when the dispatch was
	// started, the driver could not begin operating and the dispatch went back to draft.
	ErrDispatchStartRolledBack = errors.New("dispatch start was rolled back")
	// ErrDispatchResumeRolledBack is the resume counterpart of ErrDispatchStartRolledBack.
	ErrDispatchResumeRolledBack = errors.New("dispatch resume was rolled back")
)

// Driver is the part of a driver the coordinator reads and mutates.
// *driver.Driver implements it.
type Driver interface {
	ID() kernel.UUID
	Status() driver.Status
	Validate() error
	BeginOperating() error
	Release() error
}

var _ Driver = (*driver.Driver)(nil)

// DispatchCoordinator keeps a dispatch and its driver consistent while both change.
//
// Every operation follows the same steps:
//   - validate both aggregates
//   - check that the driver is the one referenced by the dispatch
//   - plan: run the pure status transitions of both sides and stop on the first error,
//     so a rejected call changes nothing
//   - commit: apply the dispatch change first and the driver change second
//
// If the driver commit still fails, start and resume put the dispatch back where it
// was before returning the error. The pair is never left with an in-progress
// dispatch and a driver that is not operating.
//
// The coordinator takes no locks. Callers run each call inside one storage
// transaction covering both aggregates.
//
// Example usage:
//
//	coordinator := services.NewDispatchCoordinator()
//	if err := coordinator.AssignDriver(d, drv); err != nil {
//	    return err
//	}
//	if err := coordinator.StartDispatch(d, drv); errors.Is(err, services.ErrDispatchStartRolledBack) {
//	    // the dispatch is a draft again
//	}
type DispatchCoordinator struct{}

// NewDispatchCoordinator creates a new DispatchCoordinator instance.
func NewDispatchCoordinator() DispatchCoordinator {
	return DispatchCoordinator{}
}

// AssignDriver references drv from a Draft or Paused dispatch.
// Unavailable and deactivated drivers cannot be assigned.
func (c DispatchCoordinator) AssignDriver(d *dispatch.Dispatch, drv Driver) error {
	if err := validate(d, drv); err != nil {
		return err
	}

	if err := d.Status().CanAssignDriver(); err != nil {
		return err
	}
	if err := drv.Status().ValidateAssignable(); err != nil {
		return err
	}

	return d.AssignDriver(drv.ID())
}

// RemoveDriver clears the driver reference of a dispatch that is not in progress.
func (c DispatchCoordinator) RemoveDriver(d *dispatch.Dispatch) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.UnassignDriver()
}

// StartDispatch starts the dispatch and puts its driver to work.
//
// Returns:
//   - dispatch errors from the start checks (driver, appointment, containers, instruction policy)
//   - driver.Status transition errors, e.g. when the driver operates another dispatch
//   - an error matching ErrDispatchStartRolledBack and the driver error when the driver
//     commit failed after the dispatch started; the dispatch is a draft again
func (c DispatchCoordinator) StartDispatch(d *dispatch.Dispatch, drv Driver) error {
	if err := c.prepare(d, drv); err != nil {
		return err
	}

	if _, err := d.Status().Start(); err != nil {
		return err
	}
	if err := d.VerifyStart(); err != nil {
		return err
	}
	if _, err := drv.Status().BeginOperating(); err != nil {
		return err
	}

	if err := d.Start(); err != nil {
		return err
	}

	if err := drv.BeginOperating(); err != nil {
		return errors.Join(ErrDispatchStartRolledBack, err, d.RevertToDraft())
	}

	return nil
}

// PauseDispatch pauses the dispatch, releases its driver and clears the reference.
func (c DispatchCoordinator) PauseDispatch(d *dispatch.Dispatch, drv Driver) error {
	if err := c.prepare(d, drv); err != nil {
		return err
	}

	if _, err := d.Status().Pause(); err != nil {
		return err
	}
	if _, err := drv.Status().Release(); err != nil {
		return err
	}

	if err := d.Pause(); err != nil {
		return err
	}
	if err := drv.Release(); err != nil {
		return errors.Join(err, d.Resume())
	}

	return d.UnassignDriver()
}

// ResumeDispatch resumes a paused dispatch with the driver assigned to it.
// If the driver cannot begin operating after the dispatch resumed, the dispatch is
// paused again and the error matches ErrDispatchResumeRolledBack.
func (c DispatchCoordinator) ResumeDispatch(d *dispatch.Dispatch, drv Driver) error {
	if err := c.prepare(d, drv); err != nil {
		return err
	}

	if _, err := d.Status().Resume(); err != nil {
		return err
	}
	if _, err := drv.Status().BeginOperating(); err != nil {
		return err
	}

	if err := d.Resume(); err != nil {
		return err
	}
	if err := drv.BeginOperating(); err != nil {
		return errors.Join(ErrDispatchResumeRolledBack, err, d.Pause())
	}

	return nil
}

// CompleteDispatch completes the dispatch, releases its driver and clears the reference.
func (c DispatchCoordinator) CompleteDispatch(d *dispatch.Dispatch, drv Driver) error {
	if err := c.prepare(d, drv); err != nil {
		return err
	}

	if _, err := d.Status().Complete(); err != nil {
		return err
	}
	if _, err := drv.Status().Release(); err != nil {
		return err
	}

	if err := d.Complete(); err != nil {
		return err
	}
	if err := drv.Release(); err != nil {
		return err
	}

	return d.UnassignDriver()
}

// CancelDispatch cancels an in-progress or paused dispatch.
//
// An in-progress dispatch needs its driver, which is released and unassigned. A
// paused dispatch already released its driver, so drv must be nil.
func (c DispatchCoordinator) CancelDispatch(d *dispatch.Dispatch, drv Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if _, err := d.Status().Cancel(); err != nil {
		return err
	}

	if d.Status() == dispatch.Paused {
		if drv != nil {
			return ErrDriverNotExpected
		}
		if err := d.Cancel(); err != nil {
			return err
		}
		if d.DriverRef() != nil {
			return d.UnassignDriver()
		}
		return nil
	}

	if drv == nil {
		return ErrDriverRequired
	}
	if err := c.prepare(d, drv); err != nil {
		return err
	}
	if _, err := drv.Status().Release(); err != nil {
		return err
	}

	if err := d.Cancel(); err != nil {
		return err
	}
	if err := drv.Release(); err != nil {
		return err
	}

	return d.UnassignDriver()
}

// RevertDispatchToDraft takes an in-progress dispatch back to draft and releases the
// driver. The driver stays assigned so the dispatch can be started again.
func (c DispatchCoordinator) RevertDispatchToDraft(d *dispatch.Dispatch, drv Driver) error {
	if err := c.prepare(d, drv); err != nil {
		return err
	}

	if _, err := d.Status().RevertToDraft(); err != nil {
		return err
	}
	if _, err := drv.Status().Release(); err != nil {
		return err
	}

	if err := d.RevertToDraft(); err != nil {
		return err
	}

	return drv.Release()
}

// prepare validates both aggregates and checks that drv is the assigned driver.
// A dispatch without a driver fails with dispatch.ErrNoDriverAssigned before drv is looked at.
func (c DispatchCoordinator) prepare(d *dispatch.Dispatch, drv Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	ref := d.DriverRef()
	if ref == nil {
		return dispatch.ErrNoDriverAssigned
	}

	if err := validate(d, drv); err != nil {
		return err
	}
	if !ref.IsEqual(drv.ID()) {
		return ErrDriverMismatch
	}

	return nil
}

func validate(d *dispatch.Dispatch, drv Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if drv == nil {
		return errs.NewValueIsRequiredError("driver")
	}
	return drv.Validate()
}
