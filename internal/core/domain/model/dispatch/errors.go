package dispatch

import (
	"errors"

	"drayage/internal/pkg/errs"
)

var (
	// ErrDispatchIsNotConstructed is returned when a Dispatch was not created via NewDispatch or RestoreDispatch.
	ErrDispatchIsNotConstructed = errors.New("Dispatch must be created via NewDispatch constructor")

	// ErrTaskIsNotConstructed is returned when a Task was not created via NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")
)

// Plan shape.
var (
	ErrNoContainers       = errs.NewBusinessRuleViolationError("a new dispatch requires at least one container")
	ErrTooManyContainers  = errs.NewBusinessRuleViolationError("a dispatch cannot carry more than four containers")
	ErrDuplicateContainer = errs.NewBusinessRuleViolationError("a container can appear only once on a dispatch")
	ErrTooFewTasks        = errs.NewBusinessRuleViolationError("a dispatch cannot have fewer than two tasks")
	ErrTooManyTasks       = errs.NewBusinessRuleViolationError("a dispatch cannot have more than ten tasks")
)

// Instruction policy.
var (
	ErrIllogicalFirstInstruction     = errs.NewBusinessRuleViolationError("the first task has an illogical instruction")
	ErrIllogicalAdjacentInstructions = errs.NewBusinessRuleViolationError("two adjacent tasks have illogical instructions")
	ErrIllogicalLastInstruction      = errs.NewBusinessRuleViolationError("the last task has an illogical instruction")
	ErrIllogicalAdditionalTask       = errs.NewBusinessRuleViolationError(
		"the new task instruction does not fit between its neighbouring tasks",
	)
)

// Lifecycle.
var (
	ErrNoDriverAssigned     = errs.NewBusinessRuleViolationError("a driver has not been assigned to the dispatch")
	ErrNoAppointment        = errs.NewBusinessRuleViolationError("an appointment has not been set on at least one task")
	ErrContainerNotAssigned = errs.NewBusinessRuleViolationError(
		"a task that moves a container has no container assigned",
	)
	ErrTaskInProgress     = errs.NewBusinessRuleViolationError("cannot pause a dispatch while a task is in progress")
	ErrTasksNotFinished   = errs.NewBusinessRuleViolationError("all tasks must be finished before the dispatch can complete")
	ErrTaskAlreadyStarted = errs.NewBusinessRuleViolationError(
		"only a dispatch without any tasks started can revert to draft",
	)
)

// Plan edits.
var (
	ErrCannotStartOutOfOrder = errs.NewBusinessRuleViolationError(
		"the preceding task must be finished before this task can start",
	)
	ErrInsertBeforeCompletedTask   = errs.NewBusinessRuleViolationError("cannot add a new task before a completed task")
	ErrCannotRemoveCompletedTask   = errs.NewBusinessRuleViolationError("cannot remove a completed task")
	ErrLastAppointment             = errs.NewBusinessRuleViolationError("cannot remove the only appointment of a dispatch that left draft")
	ErrContainerNotOnDispatch      = errs.NewBusinessRuleViolationError("the container is not carried by this dispatch")
	ErrTaskDoesNotRequireContainer = errs.NewBusinessRuleViolationError("the task instruction does not move a container")
)

// Task.
var (
	ErrMissingLocation       = errs.NewBusinessRuleViolationError("a task cannot start without a location")
	ErrStopOffNotAllowed     = errs.NewBusinessRuleViolationError("the task instruction does not allow a stop-off")
	ErrNothingToRevert       = errs.NewInvalidTransitionError("task", TaskNotStarted, "revert")
	ErrTaskNotCompleted      = errs.NewBusinessRuleViolationError("elapsed time is only known once the task is completed")
	ErrNoAppointmentToRemove = errs.NewBusinessRuleViolationError("the task has no appointment to remove")
)
