package dispatch

import (
	"fmt"
	"strings"

	"drayage/internal/pkg/errs"
)

// Status is the lifecycle state of a dispatch.
//
// State transitions:
//
//	Draft ──start──> InProgress ──complete──> Completed
//	  ^                 │    ^
//	  └─revert to draft─┘    │
//	                pause │  │ resume
//	                      v  │
//	                    Paused
//
//	InProgress, Paused ──cancel──> Cancelled
//
// Completed and Cancelled are terminal. A draft is not cancellable.
//
// Besides moves between statuses, the table also lists the operations a status
// permits without changing it (assigning a driver, editing the plan, progressing
// tasks), so every status guard of the aggregate is a table lookup.
type Status int

const (
	UnknownStatus Status = iota

	// Draft is the initial status; the plan is freely editable and no driver is operating.
	Draft
	// InProgress means the driver is operating the dispatch and tasks can progress.
	InProgress
	// Paused means the dispatch stopped mid-plan and the driver was released.
	Paused
	// Completed means every task is finished. Terminal.
	Completed
	// Cancelled means the dispatch was abandoned after it started. Terminal.
	Cancelled
)

type event int

const (
	eventStart event = iota + 1
	eventPause
	eventResume
	eventComplete
	eventCancel
	eventRevertToDraft
	eventAssignDriver
	eventUnassignDriver
	eventEditPlan
	eventRemoveTask
	eventProgressTask
)

func (e event) String() string {
	switch e {
	case eventStart:
		return "start"
	case eventPause:
		return "pause"
	case eventResume:
		return "resume"
	case eventComplete:
		return "complete"
	case eventCancel:
		return "cancel"
	case eventRevertToDraft:
		return "revert to draft"
	case eventAssignDriver:
		return "assign a driver to"
	case eventUnassignDriver:
		return "remove the driver from"
	case eventEditPlan:
		return "edit the plan of"
	case eventRemoveTask:
		return "remove a task from"
	case eventProgressTask:
		return "progress a task of"
	default:
		return "change"
	}
}

// transitions maps (status, event) to the next status. Missing pairs are invalid.
var transitions = map[Status]map[event]Status{
	Draft: {
		eventStart:          InProgress,
		eventAssignDriver:   Draft,
		eventUnassignDriver: Draft,
		eventEditPlan:       Draft,
		eventRemoveTask:     Draft,
	},
	InProgress: {
		eventPause:         Paused,
		eventComplete:      Completed,
		eventCancel:        Cancelled,
		eventRevertToDraft: Draft,
		eventEditPlan:      InProgress,
		eventProgressTask:  InProgress,
	},
	Paused: {
		eventResume:         InProgress,
		eventCancel:         Cancelled,
		eventAssignDriver:   Paused,
		eventUnassignDriver: Paused,
		eventEditPlan:       Paused,
	},
	Completed: {
		eventUnassignDriver: Completed,
	},
	Cancelled: {
		eventUnassignDriver: Cancelled,
	},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "UNKNOWN",
		Draft:         "DRAFT",
		InProgress:    "IN_PROGRESS",
		Paused:        "PAUSED",
		Completed:     "COMPLETED",
		Cancelled:     "CANCELLED",
	}
}

// Statuses returns every valid dispatch status in declaration order.
func Statuses() []Status {
	return []Status{Draft, InProgress, Paused, Completed, Cancelled}
}

// ParseStatus accepts the upper-snake name in any letter case.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range Statuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a dispatch status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects UnknownStatus and out of range values.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further lifecycle move exists.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

func (s Status) next(e event) (Status, error) {
	if to, ok := transitions[s][e]; ok {
		return to, nil
	}
	return UnknownStatus, errs.NewInvalidTransitionError("dispatch", s, e.String())
}

// Start moves Draft to InProgress.
func (s Status) Start() (Status, error) {
	return s.next(eventStart)
}

// Pause moves InProgress to Paused.
func (s Status) Pause() (Status, error) {
	return s.next(eventPause)
}

// Resume moves Paused to InProgress.
func (s Status) Resume() (Status, error) {
	return s.next(eventResume)
}

// Complete moves InProgress to Completed.
func (s Status) Complete() (Status, error) {
	return s.next(eventComplete)
}

// Cancel moves InProgress or Paused to Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.next(eventCancel)
}

// RevertToDraft moves InProgress back to Draft.
func (s Status) RevertToDraft() (Status, error) {
	return s.next(eventRevertToDraft)
}

// CanAssignDriver fails unless the dispatch is a draft or paused.
func (s Status) CanAssignDriver() error {
	_, err := s.next(eventAssignDriver)
	return err
}

// CanUnassignDriver fails while the dispatch is in progress.
func (s Status) CanUnassignDriver() error {
	_, err := s.next(eventUnassignDriver)
	return err
}

// CanEditPlan fails once the dispatch is completed or cancelled.
func (s Status) CanEditPlan() error {
	_, err := s.next(eventEditPlan)
	return err
}

// CanRemoveTask fails unless the dispatch is a draft.
func (s Status) CanRemoveTask() error {
	_, err := s.next(eventRemoveTask)
	return err
}

// CanProgressTask fails unless the dispatch is in progress.
func (s Status) CanProgressTask() error {
	_, err := s.next(eventProgressTask)
	return err
}
