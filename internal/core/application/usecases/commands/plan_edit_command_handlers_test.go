package commands_test

import (
	"testing"
	"time"

	"drayage/internal/core/application/usecases/commands"
	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectDispatchEdit wires a DispatchUoW that loads d and may persist it.
func expectDispatchEdit(t *testing.T, d *dispatch.Dispatch) (*MockDispatchUoWFactory, *MockUoW, *MockDispatchRepository) {
	t.Helper()
	ctx := t.Context()

	repo := new(MockDispatchRepository)
	uow := new(MockUoW)
	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DispatchRepository").Return(repo).Once()
	repo.On("Get", ctx, d.ID()).Return(d, nil).Once()
	repo.On("Update", ctx, d).Return(nil).Maybe()
	uow.On("Commit", ctx).Return(nil).Maybe()
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, repo
}

func TestAddTaskCommandHandler_Handle(t *testing.T) {
	t.Run("should insert a located task and renumber the plan", func(t *testing.T) {
		ctx := t.Context()
		d := newDraftDispatch(t)
		l := newLocation(t)
		ref := l.ID()
		cmd, err := commands.NewAddTaskCommand(d.ID(), 3, commands.PlannedTask{
			Instruction: dispatch.DropLoaded,
			LocationID:  &ref,
		})
		require.NoError(t, err)

		locationRepo := new(MockLocationRepository)
		dispatchRepo := new(MockDispatchRepository)
		uow := new(MockUoW)
		factory := new(MockPlanUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("LocationRepository").Return(locationRepo).Once(),
			locationRepo.On("Get", ctx, ref).Return(l, nil).Once(),
			uow.On("DispatchRepository").Return(dispatchRepo).Once(),
			dispatchRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
			dispatchRepo.On("Update", ctx, d).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewAddTaskCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, []dispatch.Instruction{
			dispatch.PickupEmpty, dispatch.LiveLoad, dispatch.DropLoaded, dispatch.Ingate,
		}, d.Instructions())
		uow.AssertExpectations(t)
	})

	t.Run("should refuse an inactive location before loading the dispatch", func(t *testing.T) {
		ctx := t.Context()
		l := newLocation(t)
		require.NoError(t, l.Deactivate())
		ref := l.ID()
		cmd, err := commands.NewAddTaskCommand(kernel.NewUUID(), 2, commands.PlannedTask{
			Instruction: dispatch.DropLoaded,
			LocationID:  &ref,
		})
		require.NoError(t, err)

		locationRepo := new(MockLocationRepository)
		uow := new(MockUoW)
		factory := new(MockPlanUoWFactory)
		factory.On("Create").Return(uow).Once()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("LocationRepository").Return(locationRepo).Once()
		locationRepo.On("Get", ctx, ref).Return(l, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewAddTaskCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		uow.AssertNotCalled(t, "DispatchRepository")
	})

	t.Run("should reject a container on an instruction that moves none", func(t *testing.T) {
		container, err := dispatch.NewContainer(containerNumber)
		require.NoError(t, err)
		cmd, err := commands.NewAddTaskCommand(kernel.NewUUID(), 1, commands.PlannedTask{
			Instruction: dispatch.FetchChassis,
			Container:   &container,
		})
		require.NoError(t, err)
		factory := new(MockPlanUoWFactory)

		err = commands.NewAddTaskCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, dispatch.ErrTaskDoesNotRequireContainer)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestRemoveTaskCommandHandler_Handle(t *testing.T) {
	t.Run("should refuse to shrink a plan below two tasks", func(t *testing.T) {
		d := newDraftDispatch(t)
		require.NoError(t, d.RemoveTask(3))
		factory, _, repo := expectDispatchEdit(t, d)
		cmd, err := commands.NewRemoveTaskCommand(d.ID(), 1)
		require.NoError(t, err)

		err = commands.NewRemoveTaskCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, dispatch.ErrTooFewTasks)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should remove a task and keep priorities contiguous", func(t *testing.T) {
		d := newDraftDispatch(t)
		factory, uow, _ := expectDispatchEdit(t, d)
		cmd, err := commands.NewRemoveTaskCommand(d.ID(), 2)
		require.NoError(t, err)

		err = commands.NewRemoveTaskCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		require.Equal(t, 2, d.TaskCount())
		for i, task := range d.Tasks() {
			assert.Equal(t, i+1, task.Priority())
		}
		uow.AssertCalled(t, "Commit", t.Context())
	})
}

func TestAppointmentCommandHandlers_Handle(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	window, err := dispatch.NewAppointment(dispatch.TimeWindow, &start, &end)
	require.NoError(t, err)

	t.Run("should set an appointment on a task that has not started", func(t *testing.T) {
		d := newDraftDispatch(t)
		factory, _, _ := expectDispatchEdit(t, d)
		cmd, err := commands.NewSetAppointmentCommand(d.ID(), 1, window)
		require.NoError(t, err)

		err = commands.NewSetAppointmentCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		task, err := d.Task(1)
		require.NoError(t, err)
		require.NotNil(t, task.Appointment())
		assert.True(t, task.Appointment().IsEqual(window))
		assert.Equal(t, 2, d.AppointmentCount())
	})

	t.Run("should reject a zero appointment at construction", func(t *testing.T) {
		_, err := commands.NewSetAppointmentCommand(kernel.NewUUID(), 1, dispatch.Appointment{})
		require.ErrorIs(t, err, dispatch.ErrAppointmentIsNotConstructed)
	})

	t.Run("should keep the last appointment of a started dispatch", func(t *testing.T) {
		d := newRunningDispatch(t, newDriver(t))
		factory, _, repo := expectDispatchEdit(t, d)
		cmd, err := commands.NewRemoveAppointmentCommand(d.ID(), 2)
		require.NoError(t, err)

		err = commands.NewRemoveAppointmentCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, dispatch.ErrLastAppointment)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should remove an appointment from a draft", func(t *testing.T) {
		d := newDraftDispatch(t)
		factory, _, _ := expectDispatchEdit(t, d)
		cmd, err := commands.NewRemoveAppointmentCommand(d.ID(), 2)
		require.NoError(t, err)

		err = commands.NewRemoveAppointmentCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, d.AppointmentCount())
	})
}

func TestAssignContainerCommandHandler_Handle(t *testing.T) {
	t.Run("should validate the input", func(t *testing.T) {
		_, err := commands.NewAssignContainerCommand(kernel.NewUUID(), "CMAU1234567", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewAssignContainerCommand(kernel.NewUUID(), "bad", []int{1})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewAssignContainerCommand(kernel.NewUUID(), "CMAU1234567", []int{0})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should refuse a container the dispatch does not carry", func(t *testing.T) {
		d := newDraftDispatch(t)
		factory, _, repo := expectDispatchEdit(t, d)
		cmd, err := commands.NewAssignContainerCommand(d.ID(), "MSCU7654321", []int{1, 2})
		require.NoError(t, err)

		err = commands.NewAssignContainerCommandHandler(factory).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, dispatch.ErrContainerNotOnDispatch)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should assign a carried container to the named tasks", func(t *testing.T) {
		d := newDraftDispatch(t)
		factory, uow, _ := expectDispatchEdit(t, d)
		cmd, err := commands.NewAssignContainerCommand(d.ID(), containerNumber, []int{1, 2, 3})
		require.NoError(t, err)

		err = commands.NewAssignContainerCommandHandler(factory).Handle(t.Context(), cmd)

		require.NoError(t, err)
		for _, task := range d.Tasks() {
			require.NotNil(t, task.Container())
			assert.Equal(t, containerNumber, task.Container().Number())
		}
		uow.AssertCalled(t, "Commit", t.Context())
	})
}
