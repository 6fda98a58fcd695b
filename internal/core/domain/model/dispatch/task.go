package dispatch

import (
	"errors"
	"time"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
)

// Task is one ordered step of a dispatch plan. It is owned by its Dispatch and
// never persisted on its own.
//
// Task follows these invariants:
//   - Priority is between 1 and MaxTasks; the dispatch keeps priorities contiguous
//   - The appointment changes only while the task is NotStarted
//   - checkInAt is set from InProgress on; checkOutAt and completedBy are set
//     exactly when the task is Completed or StopOff
type Task struct {
	// id is the generated identity of the task
	id kernel.UUID

	// priority is the 1-based position in the owning plan
	priority int

	// instruction is the logistics action performed
	instruction Instruction

	// location references where the task happens (nil if not resolved yet)
	location *kernel.UUID

	// container is the container moved by the task (nil for chassis or bobtail moves)
	container *Container

	// appointment is the optional scheduling constraint
	appointment *Appointment

	// status is the progress state
	status TaskStatus

	// completedBy references the driver who completed or stopped off the task
	completedBy *kernel.UUID

	// checkInAt is stamped on start
	checkInAt *time.Time

	// checkOutAt is stamped on complete or stop-off
	checkOutAt *time.Time

	// isConstructed ensures the task was created via NewTask or RestoreTask
	isConstructed bool
}

// NewTask creates a NotStarted task with a generated identity.
//
// Parameters:
//   - priority: desired 1-based position in the plan (renumbered by the dispatch)
//   - instruction: the logistics action
//   - location: optional location reference; required before the task can start
//   - container: optional container; must belong to the dispatch the task joins
//   - appointment: optional scheduling constraint
//
// Returns:
//   - *Task: the created task
//   - error: joined validation errors of every invalid argument
//
// Example:
//
//	terminal := kernel.NewUUID()
//	task, err := dispatch.NewTask(1, dispatch.PickupEmpty, &terminal, nil, nil)
func NewTask(
	priority int,
	instruction Instruction,
	location *kernel.UUID,
	container *Container,
	appointment *Appointment,
) (*Task, error) {
	task := &Task{
		id:            kernel.NewUUID(),
		status:        TaskNotStarted,
		isConstructed: true,
	}

	if err := errors.Join(
		task.setPriority(priority),
		task.setInstruction(instruction),
		task.setLocation(location),
		task.setContainer(container),
		task.setAppointment(appointment),
	); err != nil {
		return nil, err
	}

	return task, nil
}

// RestoreTask rebuilds a task from storage, keeping its persisted progress.
// The stamps must agree with the status: a NotStarted task has none, an
// InProgress task has only checkInAt, a finished task has checkOutAt and completedBy.
func RestoreTask(
	id kernel.UUID,
	priority int,
	instruction Instruction,
	location *kernel.UUID,
	container *Container,
	appointment *Appointment,
	status TaskStatus,
	completedBy *kernel.UUID,
	checkInAt *time.Time,
	checkOutAt *time.Time,
) (*Task, error) {
	task := &Task{isConstructed: true}

	if err := errors.Join(
		task.setID(id),
		task.setPriority(priority),
		task.setInstruction(instruction),
		task.setLocation(location),
		task.setContainer(container),
		task.setAppointment(appointment),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	task.status = status
	task.completedBy = copyRef(completedBy)
	task.checkInAt = copyTime(checkInAt)
	task.checkOutAt = copyTime(checkOutAt)

	if err := task.validateProgress(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate ensures the task was created via NewTask or RestoreTask.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// ID returns the task identity.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// Priority returns the 1-based plan position.
func (t *Task) Priority() int {
	return t.priority
}

// Instruction returns the logistics action.
func (t *Task) Instruction() Instruction {
	return t.instruction
}

// Location returns a copy of the location reference, or nil.
func (t *Task) Location() *kernel.UUID {
	return copyRef(t.location)
}

// Container returns a copy of the assigned container, or nil.
func (t *Task) Container() *Container {
	if t.container == nil {
		return nil
	}
	c := *t.container
	return &c
}

// Appointment returns a copy of the appointment, or nil.
func (t *Task) Appointment() *Appointment {
	if t.appointment == nil {
		return nil
	}
	a := *t.appointment
	return &a
}

// Status returns the progress state.
func (t *Task) Status() TaskStatus {
	return t.status
}

// CompletedBy returns the driver that finished the task, or nil.
func (t *Task) CompletedBy() *kernel.UUID {
	return copyRef(t.completedBy)
}

// CheckInAt returns the start stamp, or nil.
func (t *Task) CheckInAt() *time.Time {
	return copyTime(t.checkInAt)
}

// CheckOutAt returns the completion or stop-off stamp, or nil.
func (t *Task) CheckOutAt() *time.Time {
	return copyTime(t.checkOutAt)
}

// HasAppointment reports whether an appointment is set.
func (t *Task) HasAppointment() bool {
	return t.appointment != nil
}

// Start checks the driver in at the task location.
//
// Business rules:
//   - Only a NotStarted task can start
//   - The task must have a location
//
// Returns:
//   - errs.InvalidTransitionError if the task is not NotStarted
//   - ErrMissingLocation if no location is assigned
func (t *Task) Start(at time.Time) error {
	next, err := t.status.Start()
	if err != nil {
		return err
	}
	if t.location == nil {
		return ErrMissingLocation
	}

	t.status = next
	t.checkInAt = &at
	return nil
}

// Complete checks the driver out and records who finished the task.
// Only an InProgress task can complete.
func (t *Task) Complete(driverRef kernel.UUID, at time.Time) error {
	if err := driverRef.Validate(); err != nil {
		return err
	}

	next, err := t.status.Complete()
	if err != nil {
		return err
	}

	t.status = next
	t.checkOutAt = &at
	t.completedBy = &driverRef
	return nil
}

// StopOff finishes the task in place.
//
// Business rules:
//   - Only a NotStarted or InProgress task can stop off
//   - BOBTAIL_TO, FETCH_CHASSIS, TERMINATE_CHASSIS and STREET_TURN cannot stop off
func (t *Task) StopOff(driverRef kernel.UUID, at time.Time) error {
	if err := driverRef.Validate(); err != nil {
		return err
	}

	next, err := t.status.StopOff()
	if err != nil {
		return err
	}
	if !t.instruction.CanStopOff() {
		return ErrStopOffNotAllowed
	}

	t.status = next
	t.checkOutAt = &at
	t.completedBy = &driverRef
	return nil
}

// RevertStatus undoes the most recent forward move and clears what it stamped:
//   - InProgress -> NotStarted clears checkInAt
//   - Completed -> InProgress clears checkOutAt and completedBy
//   - StopOff -> NotStarted clears both stamps and completedBy
//
// A NotStarted task returns ErrNothingToRevert.
func (t *Task) RevertStatus() error {
	prev, err := t.status.Revert()
	if err != nil {
		return err
	}

	switch t.status { //nolint:exhaustive // Revert already rejected the rest
	case TaskInProgress:
		t.checkInAt = nil
	case TaskCompleted:
		t.checkOutAt = nil
		t.completedBy = nil
	case TaskStopOff:
		t.checkInAt = nil
		t.checkOutAt = nil
		t.completedBy = nil
	}

	t.status = prev
	return nil
}

// SetAppointment replaces the appointment. Only a NotStarted task accepts it.
func (t *Task) SetAppointment(appointment Appointment) error {
	if err := appointment.Validate(); err != nil {
		return err
	}
	if t.status != TaskNotStarted {
		return errs.NewInvalidTransitionError("task", t.status, "set the appointment of")
	}

	t.appointment = &appointment
	return nil
}

// RemoveAppointment clears the appointment. Only a NotStarted task accepts it.
func (t *Task) RemoveAppointment() error {
	if t.status != TaskNotStarted {
		return errs.NewInvalidTransitionError("task", t.status, "remove the appointment of")
	}
	if t.appointment == nil {
		return ErrNoAppointmentToRemove
	}

	t.appointment = nil
	return nil
}

// ElapsedTime is the time between check-in and check-out of a completed task.
func (t *Task) ElapsedTime() (time.Duration, error) {
	if t.status != TaskCompleted || t.checkInAt == nil || t.checkOutAt == nil {
		return 0, ErrTaskNotCompleted
	}
	return t.checkOutAt.Sub(*t.checkInAt), nil
}

// clone returns a deep copy so callers outside the aggregate cannot mutate the plan.
func (t *Task) clone() *Task {
	c := *t
	c.location = copyRef(t.location)
	c.container = t.Container()
	c.appointment = t.Appointment()
	c.completedBy = copyRef(t.completedBy)
	c.checkInAt = copyTime(t.checkInAt)
	c.checkOutAt = copyTime(t.checkOutAt)
	return &c
}

func (t *Task) assignContainer(container Container) {
	t.container = &container
}

func (t *Task) validateProgress() error {
	valid := true
	switch t.status { //nolint:exhaustive // status was validated before
	case TaskNotStarted:
		valid = t.checkInAt == nil && t.checkOutAt == nil && t.completedBy == nil
	case TaskInProgress:
		valid = t.checkInAt != nil && t.checkOutAt == nil && t.completedBy == nil
	case TaskCompleted:
		valid = t.checkInAt != nil && t.checkOutAt != nil && t.completedBy != nil
	case TaskStopOff:
		valid = t.checkOutAt != nil && t.completedBy != nil
	}
	if !valid {
		return errs.NewValueIsInvalidError("task progress does not match status " + t.status.String())
	}
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setPriority(priority int) error {
	if priority < 1 || priority > MaxTasks {
		return errs.NewValueIsOutOfRangeError("priority", priority, 1, MaxTasks)
	}
	t.priority = priority
	return nil
}

func (t *Task) setInstruction(instruction Instruction) error {
	if err := instruction.Validate(); err != nil {
		return err
	}
	t.instruction = instruction
	return nil
}

func (t *Task) setLocation(location *kernel.UUID) error {
	if location == nil {
		t.location = nil
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	t.location = copyRef(location)
	return nil
}

func (t *Task) setContainer(container *Container) error {
	if container == nil {
		t.container = nil
		return nil
	}
	if err := container.Validate(); err != nil {
		return err
	}
	if !t.instruction.RequiresContainer() {
		return ErrTaskDoesNotRequireContainer
	}
	c := *container
	t.container = &c
	return nil
}

func (t *Task) setAppointment(appointment *Appointment) error {
	if appointment == nil {
		t.appointment = nil
		return nil
	}
	if err := appointment.Validate(); err != nil {
		return err
	}
	a := *appointment
	t.appointment = &a
	return nil
}

func copyRef(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
