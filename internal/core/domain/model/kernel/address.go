package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was declared instead of built by NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

var (
	stateCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)
	zipCodePattern   = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
)

// Address is the postal address of a broker office or a pickup/delivery location.
// Every part is required; the state is a two-letter code and the zip code is
// five digits with an optional ZIP+4 suffix.
//
// Example:
//
//	addr, err := kernel.NewAddress("1 Harbor Way", "Long Beach", "ca", "90802")
//	fmt.Println(addr) // 1 Harbor Way, Long Beach, CA 90802
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	state   string
	zipcode string
	guard   guard.ConstructorGuard
}

// NewAddress trims every part, upper-cases the state code and validates all fields together.
func NewAddress(street, city, state, zipcode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setState(state),
		addr.setZipcode(zipcode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

func (a Address) Street() string {
	return a.street
}

func (a Address) City() string {
	return a.city
}

func (a Address) State() string {
	return a.state
}

func (a Address) Zipcode() string {
	return a.zipcode
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsEqual compares all parts of both addresses.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.zipcode == other.zipcode
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.state, a.zipcode)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	if !stateCodePattern.MatchString(state) {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a two-letter state code", state))
	}
	a.state = state
	return nil
}

func (a *Address) setZipcode(zipcode string) error {
	zipcode = strings.TrimSpace(zipcode)
	if zipcode == "" {
		return errs.NewValueIsRequiredError("zipcode")
	}
	if !zipCodePattern.MatchString(zipcode) {
		return errs.NewValueIsInvalidErrorWithCause("zipcode", fmt.Errorf("%q is not a valid zip code", zipcode))
	}
	a.zipcode = zipcode
	return nil
}
