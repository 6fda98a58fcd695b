package driver

import (
	"fmt"
	"strings"

	"drayage/internal/pkg/errs"
)

// Status represents the availability of a driver.
//
// State transitions:
//
//	             begin operating
//	Available ─────────────────> Operating
//	  │  ^   <───────release───────┘
//	  │  │
//	  │  └──make available── Unavailable <──sit out── Available
//	  │                          │
//	  └──deactivate──> Deactivated <──deactivate──┘
//
//	Deactivated ──reactivate──> Available
//
// An operating driver must be released before any other change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the driver can be assigned and can begin operating a dispatch.
	Available

	// Operating means the driver is running a dispatch that is in progress.
	Operating

	// Unavailable means the driver sits out temporarily (off duty, on leave).
	Unavailable

	// Deactivated means the driver no longer works for the fleet.
	Deactivated
)

type event int

const (
	eventBeginOperating event = iota + 1
	eventRelease
	eventSitOut
	eventMakeAvailable
	eventDeactivate
	eventReactivate
)

func (e event) String() string {
	switch e {
	case eventBeginOperating:
		return "begin operating"
	case eventRelease:
		return "release"
	case eventSitOut:
		return "sit out"
	case eventMakeAvailable:
		return "make available"
	case eventDeactivate:
		return "deactivate"
	case eventReactivate:
		return "reactivate"
	default:
		return "change"
	}
}

var transitions = map[Status]map[event]Status{
	Available: {
		eventBeginOperating: Operating,
		eventSitOut:         Unavailable,
		eventDeactivate:     Deactivated,
	},
	Operating: {
		eventRelease: Available,
	},
	Unavailable: {
		eventMakeAvailable: Available,
		eventDeactivate:    Deactivated,
	},
	Deactivated: {
		eventReactivate: Available,
	},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		Available:   "AVAILABLE",
		Operating:   "OPERATING",
		Unavailable: "UNAVAILABLE",
		Deactivated: "DEACTIVATED",
	}
}

// ParseStatus accepts the upper-snake name in any letter case.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%q is not a driver status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateAssignable fails for drivers that cannot be put on a dispatch:
// Unavailable and Deactivated. An Operating driver may be assigned to a
// draft; it is rejected later when that dispatch starts.
func (s Status) ValidateAssignable() error {
	if s == Unavailable || s == Deactivated {
		return errs.NewInvalidTransitionError("driver", s, "assign a dispatch to")
	}
	return s.Validate()
}

func (s Status) next(e event) (Status, error) {
	if to, ok := transitions[s][e]; ok {
		return to, nil
	}
	return Unknown, errs.NewInvalidTransitionError("driver", s, e.String())
}

// BeginOperating moves Available to Operating.
func (s Status) BeginOperating() (Status, error) {
	return s.next(eventBeginOperating)
}

// Release moves Operating back to Available.
func (s Status) Release() (Status, error) {
	return s.next(eventRelease)
}

// SitOut moves Available to Unavailable.
func (s Status) SitOut() (Status, error) {
	return s.next(eventSitOut)
}

// MakeAvailable moves Unavailable to Available.
func (s Status) MakeAvailable() (Status, error) {
	return s.next(eventMakeAvailable)
}

// Deactivate moves Available or Unavailable to Deactivated.
func (s Status) Deactivate() (Status, error) {
	return s.next(eventDeactivate)
}

// Reactivate moves Deactivated to Available.
func (s Status) Reactivate() (Status, error) {
	return s.next(eventReactivate)
}
