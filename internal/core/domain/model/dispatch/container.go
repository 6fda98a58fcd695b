package dispatch

import (
	"fmt"
	"regexp"
	"strings"

	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

// ErrContainerIsNotConstructed is returned for a zero-value Container.
var ErrContainerIsNotConstructed = errs.NewValueIsRequiredError("container must be created via NewContainer constructor")

// containerNumberPattern is the owner code (4 letters) followed by the serial and check digits.
var containerNumberPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{6,7}$`)

// Container identifies an intermodal container by its number. It has no lifecycle
// of its own; a dispatch carries between one and four of them.
type Container struct { //nolint:recvcheck //using for validation
	number string
	guard  guard.ConstructorGuard
}

// NewContainer normalizes the number (trimmed, upper-cased) and checks its format.
//
// Example:
//
//	c, err := dispatch.NewContainer(" cmau1234567 ")
//	fmt.Println(c) // CMAU1234567
func NewContainer(number string) (Container, error) {
	normalized := strings.ToUpper(strings.TrimSpace(number))
	if normalized == "" {
		return Container{}, errs.NewValueIsRequiredError("container number")
	}
	if !containerNumberPattern.MatchString(normalized) {
		return Container{}, errs.NewValueIsInvalidErrorWithCause(
			"container number",
			fmt.Errorf("%q is not a container number", number),
		)
	}

	return Container{
		number: normalized,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Number returns the normalized container number.
func (c Container) Number() string {
	return c.number
}

func (c Container) String() string {
	return c.number
}

// IsEqual compares container numbers.
func (c Container) IsEqual(other Container) bool {
	return c.number == other.number
}

// Validate returns ErrContainerIsNotConstructed for the zero value.
func (c Container) Validate() error {
	return c.guard.Validate(ErrContainerIsNotConstructed)
}
