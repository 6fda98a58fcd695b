package dispatch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"drayage/internal/pkg/errs"
	"drayage/internal/pkg/guard"
)

// ErrAppointmentIsNotConstructed is returned for a zero-value Appointment.
var ErrAppointmentIsNotConstructed = errs.NewValueIsRequiredError(
	"appointment must be created via NewAppointment constructor",
)

// AppointmentType is the kind of scheduling constraint placed on a task.
type AppointmentType int

const (
	UnknownAppointmentType AppointmentType = iota

	// Open means the facility accepts the move at any time during business hours.
	Open
	// ExactTime pins the move to a start time.
	ExactTime
	// TimeWindow bounds the move by a start and an end time.
	TimeWindow
	// ReadyAfter means the cargo is not available before the start time.
	ReadyAfter
	// Deadline means the move must happen before the end time.
	Deadline
)

func getAppointmentTypeStrings() map[AppointmentType]string {
	return map[AppointmentType]string{
		UnknownAppointmentType: "UNKNOWN",
		Open:                   "OPEN",
		ExactTime:              "EXACT_TIME",
		TimeWindow:             "TIME_WINDOW",
		ReadyAfter:             "READY_AFTER",
		Deadline:               "DEADLINE",
	}
}

// ParseAppointmentType accepts the upper-snake name in any letter case.
func ParseAppointmentType(s string) (AppointmentType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for t, str := range getAppointmentTypeStrings() {
		if t != UnknownAppointmentType && str == name {
			return t, nil
		}
	}
	return UnknownAppointmentType, errs.NewValueIsInvalidErrorWithCause(
		"appointment type",
		fmt.Errorf("%q is not a known appointment type", s),
	)
}

func (t AppointmentType) String() string {
	if str, ok := getAppointmentTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects UnknownAppointmentType and out of range values.
func (t AppointmentType) Validate() error {
	if t < Open || t > Deadline {
		return errs.NewValueIsInvalidErrorWithCause("appointment type", fmt.Errorf("%d is not a valid appointment type", t))
	}
	return nil
}

// Appointment is an immutable scheduling constraint. Tasks replace it wholesale.
//
// Required times per type:
//   - Open: none
//   - ExactTime, ReadyAfter: start
//   - Deadline: end
//   - TimeWindow: start and end, end not before start
type Appointment struct { //nolint:recvcheck //using for validation
	kind  AppointmentType
	start *time.Time
	end   *time.Time
	guard guard.ConstructorGuard
}

// NewAppointment validates the times required by the appointment type.
// Times that the type does not use are dropped.
func NewAppointment(kind AppointmentType, start, end *time.Time) (Appointment, error) {
	if err := kind.Validate(); err != nil {
		return Appointment{}, err
	}

	needsStart := kind == ExactTime || kind == ReadyAfter || kind == TimeWindow
	needsEnd := kind == Deadline || kind == TimeWindow

	var err error
	if needsStart && (start == nil || start.IsZero()) {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause(
			"appointment start", fmt.Errorf("%s appointments need a start time", kind)))
	}
	if needsEnd && (end == nil || end.IsZero()) {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause(
			"appointment end", fmt.Errorf("%s appointments need an end time", kind)))
	}
	if err != nil {
		return Appointment{}, err
	}

	appt := Appointment{kind: kind, guard: guard.NewConstructorGuard()}
	if needsStart {
		s := *start
		appt.start = &s
	}
	if needsEnd {
		e := *end
		appt.end = &e
	}

	if appt.start != nil && appt.end != nil && appt.end.Before(*appt.start) {
		return Appointment{}, errs.NewValueIsInvalidErrorWithCause(
			"appointment window",
			fmt.Errorf("end %s is before start %s", appt.end.Format(time.RFC3339), appt.start.Format(time.RFC3339)),
		)
	}

	return appt, nil
}

// Type returns the appointment type.
func (a Appointment) Type() AppointmentType {
	return a.kind
}

// Start returns a copy of the start time, or nil when the type has none.
func (a Appointment) Start() *time.Time {
	if a.start == nil {
		return nil
	}
	s := *a.start
	return &s
}

// End returns a copy of the end time, or nil when the type has none.
func (a Appointment) End() *time.Time {
	if a.end == nil {
		return nil
	}
	e := *a.end
	return &e
}

// Validate returns ErrAppointmentIsNotConstructed for the zero value.
func (a Appointment) Validate() error {
	return a.guard.Validate(ErrAppointmentIsNotConstructed)
}

// IsEqual compares type and times.
func (a Appointment) IsEqual(other Appointment) bool {
	return a.kind == other.kind && sameTime(a.start, other.start) && sameTime(a.end, other.end)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
