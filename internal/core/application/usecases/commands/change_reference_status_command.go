package commands

import (
	"errors"
	"strings"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

// Toggle switches a broker or a location on or off.
type Toggle string

const (
	Activate   Toggle = "activate"
	Deactivate Toggle = "deactivate"
)

func ParseToggle(s string) (Toggle, error) {
	switch toggle := Toggle(strings.ToLower(strings.TrimSpace(s))); toggle {
	case Activate, Deactivate:
		return toggle, nil
	default:
		return "", errs.NewValueIsInvalidError("action")
	}
}

var (
	ErrChangeBrokerStatusCommandIsNotConstructed = errors.New(
		"ChangeBrokerStatusCommand must be created via NewChangeBrokerStatusCommand constructor",
	)
	ErrChangeLocationStatusCommandIsNotConstructed = errors.New(
		"ChangeLocationStatusCommand must be created via NewChangeLocationStatusCommand constructor",
	)
)

// ChangeBrokerStatusCommand activates or deactivates a broker.
type ChangeBrokerStatusCommand struct { //nolint:recvcheck //using for validation
	brokerID kernel.UUID
	toggle   Toggle

	guard guard.ConstructorGuard
}

func NewChangeBrokerStatusCommand(brokerID kernel.UUID, action string) (ChangeBrokerStatusCommand, error) {
	toggle, toggleErr := ParseToggle(action)
	if err := errors.Join(brokerID.Validate(), toggleErr); err != nil {
		return ChangeBrokerStatusCommand{}, err
	}

	return ChangeBrokerStatusCommand{
		brokerID: brokerID,
		toggle:   toggle,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeBrokerStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeBrokerStatusCommandIsNotConstructed)
}

func (c ChangeBrokerStatusCommand) BrokerID() kernel.UUID {
	return c.brokerID
}

func (c ChangeBrokerStatusCommand) Toggle() Toggle {
	return c.toggle
}

// ChangeLocationStatusCommand activates or deactivates a location.
type ChangeLocationStatusCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	toggle     Toggle

	guard guard.ConstructorGuard
}

func NewChangeLocationStatusCommand(locationID kernel.UUID, action string) (ChangeLocationStatusCommand, error) {
	toggle, toggleErr := ParseToggle(action)
	if err := errors.Join(locationID.Validate(), toggleErr); err != nil {
		return ChangeLocationStatusCommand{}, err
	}

	return ChangeLocationStatusCommand{
		locationID: locationID,
		toggle:     toggle,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeLocationStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeLocationStatusCommandIsNotConstructed)
}

func (c ChangeLocationStatusCommand) LocationID() kernel.UUID {
	return c.locationID
}

func (c ChangeLocationStatusCommand) Toggle() Toggle {
	return c.toggle
}
