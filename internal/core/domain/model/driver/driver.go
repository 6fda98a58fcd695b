package driver

import (
	"errors"
	"strings"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a driver is created without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver is the aggregate root for a truck driver.
//
// Business rules:
//   - A driver has a valid UUID and a non-empty name
//   - A new driver is Available
//   - Status changes follow the Status transition table
//
// Example usage:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Maria Lopez")
//	if err != nil {
//	    return err
//	}
//	_ = d.SitOut()
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the display name
	name string
	// status is the current availability
	status Status
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates an Available driver.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must be non-empty after trimming)
//
// Returns:
//   - *Driver: the created driver
//   - error: joined validation errors
func NewDriver(id kernel.UUID, name string) (*Driver, error) {
	d := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(id kernel.UUID, name string, status Status) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// ID returns the driver identity.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the display name.
func (d *Driver) Name() string {
	return d.name
}

// Status returns the current availability.
func (d *Driver) Status() Status {
	return d.status
}

// IsEqual compares drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Validate returns ErrDriverIsNotConstructed for a driver not built by NewDriver or RestoreDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// BeginOperating marks the driver as running a dispatch.
func (d *Driver) BeginOperating() error {
	return d.apply(d.status.BeginOperating)
}

// Release returns an operating driver to Available.
func (d *Driver) Release() error {
	return d.apply(d.status.Release)
}

// SitOut makes an available driver temporarily Unavailable.
func (d *Driver) SitOut() error {
	return d.apply(d.status.SitOut)
}

// MakeAvailable brings an unavailable driver back.
func (d *Driver) MakeAvailable() error {
	return d.apply(d.status.MakeAvailable)
}

// Deactivate retires the driver.
func (d *Driver) Deactivate() error {
	return d.apply(d.status.Deactivate)
}

// Reactivate brings a deactivated driver back as Available.
func (d *Driver) Reactivate() error {
	return d.apply(d.status.Reactivate)
}

func (d *Driver) apply(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return err
	}
	d.status = next
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameIsRequired
	}
	d.name = trimmed
	return nil
}

func (d *Driver) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
