package commands

import (
	"errors"
	"strings"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

// DispatchAction names a macro transition of a dispatch.
type DispatchAction string

const (
	StartDispatch         DispatchAction = "start"
	PauseDispatch         DispatchAction = "pause"
	ResumeDispatch        DispatchAction = "resume"
	CompleteDispatch      DispatchAction = "complete"
	CancelDispatch        DispatchAction = "cancel"
	RevertDispatchToDraft DispatchAction = "revert-to-draft"
)

// DispatchActions lists every supported action.
func DispatchActions() []DispatchAction {
	return []DispatchAction{
		StartDispatch,
		PauseDispatch,
		ResumeDispatch,
		CompleteDispatch,
		CancelDispatch,
		RevertDispatchToDraft,
	}
}

// ParseDispatchAction is case-insensitive.
func ParseDispatchAction(s string) (DispatchAction, error) {
	wanted := DispatchAction(strings.ToLower(strings.TrimSpace(s)))
	for _, action := range DispatchActions() {
		if action == wanted {
			return action, nil
		}
	}
	return "", errs.NewValueIsInvalidError("action")
}

var (
	ErrChangeDispatchStatusCommandIsNotConstructed = errors.New(
		"ChangeDispatchStatusCommand must be created via NewChangeDispatchStatusCommand constructor",
	)
)

// ChangeDispatchStatusCommand requests a macro transition of a dispatch.
//
// The driver is optional: when it is nil the driver referenced by the dispatch is used.
// Cancelling a paused dispatch involves no driver at all.
type ChangeDispatchStatusCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	action     DispatchAction
	driverID   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewChangeDispatchStatusCommand(
	dispatchID kernel.UUID,
	action string,
	driverID *kernel.UUID,
) (ChangeDispatchStatusCommand, error) {
	cmd := ChangeDispatchStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDispatchID(dispatchID),
		cmd.setAction(action),
		cmd.setDriverID(driverID),
	); err != nil {
		return ChangeDispatchStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDispatchStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDispatchStatusCommandIsNotConstructed)
}

func (c ChangeDispatchStatusCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c ChangeDispatchStatusCommand) Action() DispatchAction {
	return c.action
}

// DriverID returns the driver named by the caller, or nil.
func (c ChangeDispatchStatusCommand) DriverID() *kernel.UUID {
	if c.driverID == nil {
		return nil
	}
	id := *c.driverID
	return &id
}

func (c *ChangeDispatchStatusCommand) setDispatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dispatchID = id
	return nil
}

func (c *ChangeDispatchStatusCommand) setAction(action string) error {
	parsed, err := ParseDispatchAction(action)
	if err != nil {
		return err
	}
	c.action = parsed
	return nil
}

func (c *ChangeDispatchStatusCommand) setDriverID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	copied := *id
	c.driverID = &copied
	return nil
}
