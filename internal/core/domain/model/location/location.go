// Package location holds the Location aggregate: a terminal, yard, shipper or
// consignee facility where a task happens. Only active locations can be planned.
package location

import (
	"errors"
	"fmt"
	"strings"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

var (
	ErrNameIsRequired           = errs.NewValueIsRequiredError("name")
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")
	ErrLocationIsInactive       = errs.NewBusinessRuleViolationError("an inactive location cannot be planned")
)

// Status tells whether the facility is open to the fleet.
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
		return Unknown, errs.NewValueIsInvalidErrorWithCause("location status", fmt.Errorf("%q is not a location status", s))
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
		return errs.NewValueIsInvalidErrorWithCause("location status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Location is the aggregate root for a facility.
type Location struct {
	id      kernel.UUID
	name    string
	address kernel.Address
	status  Status
	guard   guard.ConstructorGuard
}

// NewLocation creates an Active location.
//
// Example:
//
//	addr, _ := kernel.NewAddress("2500 Navy Way", "San Pedro", "CA", "90731")
//	l, err := location.NewLocation(kernel.NewUUID(), "Pier 400", addr)
func NewLocation(id kernel.UUID, name string, address kernel.Address) (*Location, error) {
	return RestoreLocation(id, name, address, Active)
}

// RestoreLocation reconstructs a Location from persistent storage.
func RestoreLocation(id kernel.UUID, name string, address kernel.Address, status Status) (*Location, error) {
	l := &Location{guard: guard.NewConstructorGuard()}

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

	l.id = id
	l.name = trimmed
	l.address = address
	l.status = status
	return l, nil
}

func (l *Location) ID() kernel.UUID {
	return l.id
}

func (l *Location) Name() string {
	return l.name
}

func (l *Location) Address() kernel.Address {
	return l.address
}

func (l *Location) Status() Status {
	return l.status
}

func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// ValidateCanPlan fails unless the location is active.
func (l *Location) ValidateCanPlan() error {
	if l.status != Active {
		return ErrLocationIsInactive
	}
	return nil
}

// Deactivate stops new tasks from referencing the location.
func (l *Location) Deactivate() error {
	if l.status != Active {
		return errs.NewInvalidTransitionError("location", l.status, "deactivate")
	}
	l.status = Inactive
	return nil
}

// Reactivate reopens an inactive location.
func (l *Location) Reactivate() error {
	if l.status != Inactive {
		return errs.NewInvalidTransitionError("location", l.status, "reactivate")
	}
	l.status = Active
	return nil
}
