package commands

import (
	"errors"
	"strings"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

// AvailabilityAction names a driver status change a dispatcher may request.
// Moves to and from OPERATING belong to the dispatch transitions.
type AvailabilityAction string

const (
	SitOutDriver        AvailabilityAction = "sit-out"
	MakeDriverAvailable AvailabilityAction = "make-available"
	DeactivateDriver    AvailabilityAction = "deactivate"
	ReactivateDriver    AvailabilityAction = "reactivate"
)

func ParseAvailabilityAction(s string) (AvailabilityAction, error) {
	switch action := AvailabilityAction(strings.ToLower(strings.TrimSpace(s))); action {
	case SitOutDriver, MakeDriverAvailable, DeactivateDriver, ReactivateDriver:
		return action, nil
	default:
		return "", errs.NewValueIsInvalidError("action")
	}
}

var (
	ErrChangeDriverAvailabilityCommandIsNotConstructed = errors.New(
		"ChangeDriverAvailabilityCommand must be created via NewChangeDriverAvailabilityCommand constructor",
	)
)

type ChangeDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	action   AvailabilityAction

	guard guard.ConstructorGuard
}

func NewChangeDriverAvailabilityCommand(driverID kernel.UUID, action string) (ChangeDriverAvailabilityCommand, error) {
	parsed, actionErr := ParseAvailabilityAction(action)
	if err := errors.Join(driverID.Validate(), actionErr); err != nil {
		return ChangeDriverAvailabilityCommand{}, err
	}

	return ChangeDriverAvailabilityCommand{
		driverID: driverID,
		action:   parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverAvailabilityCommandIsNotConstructed)
}

func (c ChangeDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c ChangeDriverAvailabilityCommand) Action() AvailabilityAction {
	return c.action
}
