// Package broker holds the Broker aggregate: the freight broker that orders a
// dispatch. Only active brokers can order new dispatches.
package broker

import (
	"errors"
	"fmt"
	"strings"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrBrokerIsNotConstructed = errors.New("Broker must be created via NewBroker constructor")
	ErrBrokerIsInactive       = errs.NewBusinessRuleViolationError("an inactive broker cannot order a dispatch")
)

// Status tells whether the broker is doing business with the fleet.
type Status int

const (
	Unknown Status = iota
	Active
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Active:   "ACTIVE",
		Inactive: "INACTIVE",
	}
}

// ParseStatus accepts ACTIVE or INACTIVE in any letter case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACTIVE":
		return Active, nil
	case "INACTIVE":
		return Inactive, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("broker status", fmt.Errorf("%q is not a broker status", s))
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) Validate() error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("broker status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Broker is the aggregate root for a freight broker.
type Broker struct {
	id      kernel.UUID
	name    string
	address kernel.Address
	status  Status
	guard   guard.ConstructorGuard
}

// NewBroker creates an Active broker.
//
// Example:
//
//	addr, _ := kernel.NewAddress("100 Ocean Blvd", "Long Beach", "CA", "90802")
//	b, err := broker.NewBroker(kernel.NewUUID(), "Pacific Freight", addr)
func NewBroker(id kernel.UUID, name string, address kernel.Address) (*Broker, error) {
	return RestoreBroker(id, name, address, Active)
}

// RestoreBroker reconstructs a Broker from persistent storage.
func RestoreBroker(id kernel.UUID, name string, address kernel.Address, status Status) (*Broker, error) {
	b := &Broker{guard: guard.NewConstructorGuard()}

	trimmed := strings.TrimSpace(name)
	var nameErr error
	if trimmed == "" {
		nameErr = ErrNameIsRequired
	}

	if err := errors.Join(
		id.Validate(),
		nameErr,
		address.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	b.id = id
	b.name = trimmed
	b.address = address
	b.status = status
	return b, nil
}

func (b *Broker) ID() kernel.UUID {
	return b.id
}

func (b *Broker) Name() string {
	return b.name
}

func (b *Broker) Address() kernel.Address {
	return b.address
}

func (b *Broker) Status() Status {
	return b.status
}

func (b *Broker) Validate() error {
	if b == nil {
		return ErrBrokerIsNotConstructed
	}
	return b.guard.Validate(ErrBrokerIsNotConstructed)
}

// ValidateCanOrder fails unless the broker is active.
func (b *Broker) ValidateCanOrder() error {
	if b.status != Active {
		return ErrBrokerIsInactive
	}
	return nil
}

// Deactivate stops the broker from ordering new dispatches.
func (b *Broker) Deactivate() error {
	if b.status != Active {
		return errs.NewInvalidTransitionError("broker", b.status, "deactivate")
	}
	b.status = Inactive
	return nil
}

// Reactivate lets an inactive broker order dispatches again.
func (b *Broker) Reactivate() error {
	if b.status != Inactive {
		return errs.NewInvalidTransitionError("broker", b.status, "reactivate")
	}
	b.status = Active
	return nil
}
