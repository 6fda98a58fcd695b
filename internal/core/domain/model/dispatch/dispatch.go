package dispatch

import (
	"errors"
	"fmt"
	"time"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"
)

const (
	MinTasks      = 2
	MaxTasks      = 10
	MinContainers = 1
	MaxContainers = 4
)

// Dispatch is the aggregate root of one transport job. It owns an ordered plan of
// tasks, the containers moved by the job, an immutable broker reference and an
// optional driver reference.
//
// Dispatch follows these invariants:
//   - The plan holds MinTasks..MaxTasks tasks and plan[i].Priority() == i+1
//   - It carries MinContainers..MaxContainers distinct containers
//   - With exactly one container, every task that moves a container has it assigned
//   - Task containers always belong to the dispatch
//   - Status transitions follow the table in status.go
//
// The driver reference is changed by the DispatchCoordinator domain service,
// which keeps it consistent with the driver aggregate.
type Dispatch struct {
	// id is the unique identifier of the dispatch
	id kernel.UUID

	// brokerRef references the broker that ordered the job
	brokerRef kernel.UUID

	// driverRef references the assigned driver (nil if none)
	driverRef *kernel.UUID

	// containers is the ordered set of containers moved by the job
	containers []Container

	// plan is the ordered list of tasks
	plan []*Task

	// status is the lifecycle state
	status Status

	// isConstructed ensures the dispatch was created via NewDispatch or RestoreDispatch
	isConstructed bool
}

// NewDispatch builds a Draft dispatch from a broker reference, its containers and an initial plan.
//
// Business rules:
//   - At least one and at most four distinct containers
//   - Between two and ten tasks
//   - Task priorities are renumbered from the order of plan
//   - A task container must be one of containers
//   - With a single container, it is assigned to every task that moves a container
//
// The tasks are copied; later changes to the passed tasks do not affect the dispatch.
//
// Example:
//
//	container, _ := dispatch.NewContainer("CMAU1234567")
//	pickup, _ := dispatch.NewTask(1, dispatch.PickupEmpty, &yard, nil, nil)
//	load, _ := dispatch.NewTask(2, dispatch.LiveLoad, &shipper, nil, &appt)
//	ingate, _ := dispatch.NewTask(3, dispatch.Ingate, &terminal, nil, nil)
//	d, err := dispatch.NewDispatch(kernel.NewUUID(), brokerID,
//	    []dispatch.Container{container}, []*dispatch.Task{pickup, load, ingate})
func NewDispatch(id, brokerRef kernel.UUID, containers []Container, plan []*Task) (*Dispatch, error) {
	d := &Dispatch{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setBrokerRef(brokerRef),
		d.setContainers(containers),
	); err != nil {
		return nil, err
	}

	if err := d.setPlan(plan); err != nil {
		return nil, err
	}

	d.autoAssignSingleContainer()
	return d, nil
}

// RestoreDispatch rebuilds a dispatch from storage. Construction rules about the
// plan shape are checked again; lifecycle rules are not re-run.
func RestoreDispatch(
	id kernel.UUID,
	brokerRef kernel.UUID,
	driverRef *kernel.UUID,
	status Status,
	containers []Container,
	plan []*Task,
) (*Dispatch, error) {
	d := &Dispatch{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setBrokerRef(brokerRef),
		d.setDriverRef(driverRef),
		status.Validate(),
		d.setContainers(containers),
	); err != nil {
		return nil, err
	}

	d.status = status

	if err := d.restorePlan(plan); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the dispatch was created via NewDispatch or RestoreDispatch.
func (d *Dispatch) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDispatchIsNotConstructed
	}
	return nil
}

// IsEqual compares dispatches by identity.
func (d *Dispatch) IsEqual(other *Dispatch) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dispatch identity.
func (d *Dispatch) ID() kernel.UUID {
	return d.id
}

// BrokerRef returns the broker reference.
func (d *Dispatch) BrokerRef() kernel.UUID {
	return d.brokerRef
}

// DriverRef returns a copy of the driver reference, or nil.
func (d *Dispatch) DriverRef() *kernel.UUID {
	return copyRef(d.driverRef)
}

// Status returns the lifecycle state.
func (d *Dispatch) Status() Status {
	return d.status
}

// Containers returns a copy of the containers in order.
func (d *Dispatch) Containers() []Container {
	out := make([]Container, len(d.containers))
	copy(out, d.containers)
	return out
}

// Tasks returns copies of the plan tasks in priority order.
func (d *Dispatch) Tasks() []*Task {
	out := make([]*Task, 0, len(d.plan))
	for _, t := range d.plan {
		out = append(out, t.clone())
	}
	return out
}

// Task returns a copy of the task at priority.
func (d *Dispatch) Task(priority int) (*Task, error) {
	t, err := d.taskAt(priority)
	if err != nil {
		return nil, err
	}
	return t.clone(), nil
}

// TaskCount returns the plan length.
func (d *Dispatch) TaskCount() int {
	return len(d.plan)
}

// Instructions returns the plan instructions in priority order.
func (d *Dispatch) Instructions() []Instruction {
	out := make([]Instruction, 0, len(d.plan))
	for _, t := range d.plan {
		out = append(out, t.instruction)
	}
	return out
}

// AppointmentCount returns the number of tasks carrying an appointment.
func (d *Dispatch) AppointmentCount() int {
	count := 0
	for _, t := range d.plan {
		if t.HasAppointment() {
			count++
		}
	}
	return count
}

// HasContainer reports whether the container is carried by the dispatch.
func (d *Dispatch) HasContainer(container Container) bool {
	for _, c := range d.containers {
		if c.IsEqual(container) {
			return true
		}
	}
	return false
}

// VerifyStart checks, without changing anything, that the dispatch is ready to start.
//
// Business rules, checked in order:
//   - A driver is assigned (ErrNoDriverAssigned)
//   - At least one task has an appointment (ErrNoAppointment)
//   - Every task that moves a container has one (ErrContainerNotAssigned)
//   - The first instruction is startable (ErrIllogicalFirstInstruction)
//   - Every adjacent pair is allowed (ErrIllogicalAdjacentInstructions)
//   - The last instruction is endable (ErrIllogicalLastInstruction)
//
// The returned error wraps the rule sentinel, so errors.Is matches it.
func (d *Dispatch) VerifyStart() error {
	if d.driverRef == nil {
		return ErrNoDriverAssigned
	}

	if d.AppointmentCount() == 0 {
		return ErrNoAppointment
	}

	for _, t := range d.plan {
		if t.instruction.RequiresContainer() && t.container == nil {
			return fmt.Errorf("task %d: %w", t.priority, ErrContainerNotAssigned)
		}
	}

	if violations := ValidatePlan(d.Instructions()); len(violations) > 0 {
		return violations[0]
	}

	return nil
}

// Start moves a Draft dispatch to InProgress once VerifyStart passes.
// A failed start leaves the dispatch unchanged.
func (d *Dispatch) Start() error {
	next, err := d.status.Start()
	if err != nil {
		return err
	}

	if err = d.VerifyStart(); err != nil {
		return err
	}

	d.status = next
	return nil
}

// Pause moves an InProgress dispatch to Paused. No task may be InProgress.
func (d *Dispatch) Pause() error {
	next, err := d.status.Pause()
	if err != nil {
		return err
	}

	for _, t := range d.plan {
		if t.status == TaskInProgress {
			return ErrTaskInProgress
		}
	}

	d.status = next
	return nil
}

// Resume moves a Paused dispatch back to InProgress.
func (d *Dispatch) Resume() error {
	next, err := d.status.Resume()
	if err != nil {
		return err
	}

	d.status = next
	return nil
}

// Complete moves an InProgress dispatch to Completed once every task is
// completed or stopped off.
func (d *Dispatch) Complete() error {
	next, err := d.status.Complete()
	if err != nil {
		return err
	}

	for _, t := range d.plan {
		if !t.status.IsFinished() {
			return ErrTasksNotFinished
		}
	}

	d.status = next
	return nil
}

// Cancel abandons an InProgress or Paused dispatch. Drafts are not cancellable.
func (d *Dispatch) Cancel() error {
	next, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = next
	return nil
}

// RevertToDraft moves an InProgress dispatch back to Draft while its first task
// has not started.
func (d *Dispatch) RevertToDraft() error {
	next, err := d.status.RevertToDraft()
	if err != nil {
		return err
	}

	if d.plan[0].status != TaskNotStarted {
		return ErrTaskAlreadyStarted
	}

	d.status = next
	return nil
}

// AssignDriver sets the driver reference on a Draft or Paused dispatch.
// Driver availability is checked by the DispatchCoordinator.
func (d *Dispatch) AssignDriver(driverRef kernel.UUID) error {
	if err := driverRef.Validate(); err != nil {
		return err
	}
	if err := d.status.CanAssignDriver(); err != nil {
		return err
	}

	d.driverRef = &driverRef
	return nil
}

// UnassignDriver clears the driver reference. It fails with ErrNoDriverAssigned
// when there is none and is forbidden while the dispatch is InProgress.
func (d *Dispatch) UnassignDriver() error {
	if d.driverRef == nil {
		return ErrNoDriverAssigned
	}
	if err := d.status.CanUnassignDriver(); err != nil {
		return err
	}

	d.driverRef = nil
	return nil
}

// StartTask starts the task at priority. The dispatch must be InProgress and the
// preceding task, if any, must be finished.
//
// A stopped-off predecessor counts as finished alongside a completed one. A stop-off
// parks the container for a later leg, so the driver moves on to the next task; were
// only COMPLETED accepted, any plan with a stop-off could never progress past it.
func (d *Dispatch) StartTask(priority int) error {
	if err := d.status.CanProgressTask(); err != nil {
		return err
	}

	t, err := d.taskAt(priority)
	if err != nil {
		return err
	}

	if priority > 1 && !d.plan[priority-2].status.IsFinished() {
		return ErrCannotStartOutOfOrder
	}

	return t.Start(now())
}

// CompleteTask completes the task at priority on behalf of the assigned driver.
func (d *Dispatch) CompleteTask(priority int) error {
	t, err := d.progressableTask(priority)
	if err != nil {
		return err
	}
	return t.Complete(*d.driverRef, now())
}

// MarkStopOff stops off the task at priority on behalf of the assigned driver.
func (d *Dispatch) MarkStopOff(priority int) error {
	t, err := d.progressableTask(priority)
	if err != nil {
		return err
	}
	return t.StopOff(*d.driverRef, now())
}

// RevertTask reverts the task at priority by one step.
func (d *Dispatch) RevertTask(priority int) error {
	if err := d.status.CanProgressTask(); err != nil {
		return err
	}

	t, err := d.taskAt(priority)
	if err != nil {
		return err
	}

	return t.RevertStatus()
}

// AddTask inserts task at its priority, shifting later tasks down. A priority past
// the end of the plan appends.
//
// Business rules:
//   - Forbidden once the dispatch is Completed or Cancelled
//   - The plan cannot grow beyond MaxTasks
//   - A task cannot be inserted before a Completed task
//   - Once started (InProgress or Paused), the task must fit its neighbours per the
//     instruction policy; a stopped-off predecessor does not constrain it
//   - A task container must belong to the dispatch; with a single container it is assigned
func (d *Dispatch) AddTask(task *Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := d.status.CanEditPlan(); err != nil {
		return err
	}
	if len(d.plan) >= MaxTasks {
		return ErrTooManyTasks
	}

	idx := min(task.priority, len(d.plan)+1) - 1
	if idx < len(d.plan) && d.plan[idx].status == TaskCompleted {
		return ErrInsertBeforeCompletedTask
	}

	if d.status == InProgress || d.status == Paused {
		if err := d.validAdditionalTask(idx, task.instruction); err != nil {
			return err
		}
	}

	added := task.clone()
	if added.container != nil && !d.HasContainer(*added.container) {
		return ErrContainerNotOnDispatch
	}
	if len(d.containers) == 1 && added.container == nil && added.instruction.RequiresContainer() {
		added.assignContainer(d.containers[0])
	}

	d.plan = append(d.plan[:idx], append([]*Task{added}, d.plan[idx:]...)...)
	d.renumber()
	return nil
}

// RemoveTask removes the task at priority from a Draft dispatch, keeping at least
// MinTasks tasks. Completed tasks cannot be removed.
func (d *Dispatch) RemoveTask(priority int) error {
	if err := d.status.CanRemoveTask(); err != nil {
		return err
	}
	if len(d.plan) <= MinTasks {
		return ErrTooFewTasks
	}

	t, err := d.taskAt(priority)
	if err != nil {
		return err
	}
	if t.status == TaskCompleted {
		return ErrCannotRemoveCompletedTask
	}

	d.plan = append(d.plan[:priority-1], d.plan[priority:]...)
	d.renumber()
	return nil
}

// SetAppointment replaces the appointment of the task at priority.
func (d *Dispatch) SetAppointment(priority int, appointment Appointment) error {
	if err := d.status.CanEditPlan(); err != nil {
		return err
	}

	t, err := d.taskAt(priority)
	if err != nil {
		return err
	}

	return t.SetAppointment(appointment)
}

// RemoveAppointment clears the appointment of the task at priority. Outside Draft
// the dispatch must keep at least one appointment.
func (d *Dispatch) RemoveAppointment(priority int) error {
	if err := d.status.CanEditPlan(); err != nil {
		return err
	}

	t, err := d.taskAt(priority)
	if err != nil {
		return err
	}

	if d.status != Draft && t.HasAppointment() && d.AppointmentCount() == 1 {
		return ErrLastAppointment
	}

	return t.RemoveAppointment()
}

// AssignContainer assigns one of the dispatch containers to the tasks at the given
// priorities. Either every task is assigned or none is.
func (d *Dispatch) AssignContainer(container Container, priorities ...int) error {
	if err := container.Validate(); err != nil {
		return err
	}
	if err := d.status.CanEditPlan(); err != nil {
		return err
	}
	if !d.HasContainer(container) {
		return ErrContainerNotOnDispatch
	}
	if len(priorities) == 0 {
		return errs.NewValueIsRequiredError("priorities")
	}

	tasks := make([]*Task, 0, len(priorities))
	for _, p := range priorities {
		t, err := d.taskAt(p)
		if err != nil {
			return err
		}
		if !t.instruction.RequiresContainer() {
			return fmt.Errorf("task %d: %w", p, ErrTaskDoesNotRequireContainer)
		}
		tasks = append(tasks, t)
	}

	for _, t := range tasks {
		t.assignContainer(container)
	}
	return nil
}

// validAdditionalTask checks the instruction inserted at idx against its neighbours.
func (d *Dispatch) validAdditionalTask(idx int, instruction Instruction) error {
	if idx == 0 && !IsStartable(instruction) {
		return ErrIllogicalAdditionalTask
	}
	if idx > 0 {
		prev := d.plan[idx-1]
		if prev.status != TaskStopOff && !CanFollow(prev.instruction, instruction) {
			return ErrIllogicalAdditionalTask
		}
	}
	if idx < len(d.plan) && !CanFollow(instruction, d.plan[idx].instruction) {
		return ErrIllogicalAdditionalTask
	}
	if idx == len(d.plan) && !IsEndable(instruction) {
		return ErrIllogicalAdditionalTask
	}
	return nil
}

func (d *Dispatch) progressableTask(priority int) (*Task, error) {
	if err := d.status.CanProgressTask(); err != nil {
		return nil, err
	}
	if d.driverRef == nil {
		return nil, ErrNoDriverAssigned
	}
	return d.taskAt(priority)
}

func (d *Dispatch) taskAt(priority int) (*Task, error) {
	if priority < 1 || priority > len(d.plan) {
		return nil, errs.NewValueIsOutOfRangeError("priority", priority, 1, len(d.plan))
	}
	return d.plan[priority-1], nil
}

func (d *Dispatch) renumber() {
	for i, t := range d.plan {
		t.priority = i + 1
	}
}

func (d *Dispatch) autoAssignSingleContainer() {
	if len(d.containers) != 1 {
		return
	}
	for _, t := range d.plan {
		if t.container == nil && t.instruction.RequiresContainer() {
			t.assignContainer(d.containers[0])
		}
	}
}

func (d *Dispatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dispatch) setBrokerRef(brokerRef kernel.UUID) error {
	if err := brokerRef.Validate(); err != nil {
		return err
	}
	d.brokerRef = brokerRef
	return nil
}

func (d *Dispatch) setDriverRef(driverRef *kernel.UUID) error {
	if driverRef == nil {
		d.driverRef = nil
		return nil
	}
	if err := driverRef.Validate(); err != nil {
		return err
	}
	d.driverRef = copyRef(driverRef)
	return nil
}

func (d *Dispatch) setContainers(containers []Container) error {
	switch {
	case len(containers) < MinContainers:
		return ErrNoContainers
	case len(containers) > MaxContainers:
		return ErrTooManyContainers
	}

	set := make([]Container, 0, len(containers))
	for _, c := range containers {
		if err := c.Validate(); err != nil {
			return err
		}
		for _, seen := range set {
			if seen.IsEqual(c) {
				return ErrDuplicateContainer
			}
		}
		set = append(set, c)
	}

	d.containers = set
	return nil
}

func (d *Dispatch) setPlan(plan []*Task) error {
	switch {
	case len(plan) < MinTasks:
		return ErrTooFewTasks
	case len(plan) > MaxTasks:
		return ErrTooManyTasks
	}

	tasks := make([]*Task, 0, len(plan))
	for _, t := range plan {
		if err := t.Validate(); err != nil {
			return err
		}
		if t.container != nil && !d.HasContainer(*t.container) {
			return fmt.Errorf("task %s: %w", t.instruction, ErrContainerNotOnDispatch)
		}
		tasks = append(tasks, t.clone())
	}

	d.plan = tasks
	d.renumber()
	return nil
}

// restorePlan expects tasks already carrying priorities 1..N, in any order.
func (d *Dispatch) restorePlan(plan []*Task) error {
	if len(plan) < MinTasks || len(plan) > MaxTasks {
		return errs.NewValueIsOutOfRangeError("plan length", len(plan), MinTasks, MaxTasks)
	}

	ordered := make([]*Task, len(plan))
	for _, t := range plan {
		if err := t.Validate(); err != nil {
			return err
		}
		if t.container != nil && !d.HasContainer(*t.container) {
			return fmt.Errorf("task %d: %w", t.priority, ErrContainerNotOnDispatch)
		}
		if t.priority > len(plan) || ordered[t.priority-1] != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"plan",
				fmt.Errorf("priority %d is duplicated or beyond the plan length %d", t.priority, len(plan)),
			)
		}
		ordered[t.priority-1] = t.clone()
	}

	d.plan = ordered
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
