package dispatch

import (
	"fmt"

	"drayage/internal/pkg/errs"
)

// TaskStatus is the progress state of a single task.
//
// State transitions:
//
//	NOT_STARTED ──start──> IN_PROGRESS ──complete──> COMPLETED
//	     │                    │
//	     └──stop-off──> STOP_OFF <──stop-off──┘
//
// Every forward move can be reverted one step: TaskInProgress -> TaskNotStarted,
// TaskCompleted -> TaskInProgress, TaskStopOff -> TaskNotStarted.
type TaskStatus int

const (
	UnknownTaskStatus TaskStatus = iota

	// TaskNotStarted is the initial status; appointments can only change here.
	TaskNotStarted
	// TaskInProgress means the driver checked in at the task location.
	TaskInProgress
	// TaskCompleted means the driver checked out after finishing the task.
	TaskCompleted
	// TaskStopOff means the task was finished in place as a mid-route stop.
	TaskStopOff
)

type taskEvent int

const (
	taskStart taskEvent = iota + 1
	taskComplete
	taskStopOff
	taskRevert
)

func (e taskEvent) String() string {
	switch e {
	case taskStart:
		return "start"
	case taskComplete:
		return "complete"
	case taskStopOff:
		return "stop off"
	case taskRevert:
		return "revert"
	default:
		return "change"
	}
}

// taskTransitions maps (status, event) to the next status. Missing pairs are invalid.
var taskTransitions = map[TaskStatus]map[taskEvent]TaskStatus{
	TaskNotStarted: {
		taskStart:   TaskInProgress,
		taskStopOff: TaskStopOff,
	},
	TaskInProgress: {
		taskComplete: TaskCompleted,
		taskStopOff:  TaskStopOff,
		taskRevert:   TaskNotStarted,
	},
	TaskCompleted: {
		taskRevert: TaskInProgress,
	},
	TaskStopOff: {
		taskRevert: TaskNotStarted,
	},
}

func getTaskStatusStrings() map[TaskStatus]string {
	return map[TaskStatus]string{
		UnknownTaskStatus: "UNKNOWN",
		TaskNotStarted:    "NOT_STARTED",
		TaskInProgress:    "IN_PROGRESS",
		TaskCompleted:     "COMPLETED",
		TaskStopOff:       "STOP_OFF",
	}
}

func (s TaskStatus) String() string {
	if str, ok := getTaskStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate rejects UnknownTaskStatus and out of range values.
func (s TaskStatus) Validate() error {
	if _, ok := taskTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("task status", fmt.Errorf("%d is not a valid task status", s))
	}
	return nil
}

// IsFinished reports whether the task no longer blocks the plan: completed or stopped off.
func (s TaskStatus) IsFinished() bool {
	return s == TaskCompleted || s == TaskStopOff
}

func (s TaskStatus) next(e taskEvent) (TaskStatus, error) {
	if e == taskRevert && s == TaskNotStarted {
		return UnknownTaskStatus, ErrNothingToRevert
	}
	if to, ok := taskTransitions[s][e]; ok {
		return to, nil
	}
	return UnknownTaskStatus, errs.NewInvalidTransitionError("task", s, e.String())
}

// Start moves TaskNotStarted to TaskInProgress.
func (s TaskStatus) Start() (TaskStatus, error) {
	return s.next(taskStart)
}

// Complete moves TaskInProgress to TaskCompleted.
func (s TaskStatus) Complete() (TaskStatus, error) {
	return s.next(taskComplete)
}

// StopOff moves TaskNotStarted or TaskInProgress to TaskStopOff.
func (s TaskStatus) StopOff() (TaskStatus, error) {
	return s.next(taskStopOff)
}

// Revert undoes the most recent forward move. TaskNotStarted yields ErrNothingToRevert.
func (s TaskStatus) Revert() (TaskStatus, error) {
	return s.next(taskRevert)
}
