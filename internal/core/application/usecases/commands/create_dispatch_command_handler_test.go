package commands_test

import (
	"errors"
	"testing"

	"drayage/internal/core/application/usecases/commands"
	"drayage/internal/core/domain/model/broker"
	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/core/domain/model/location"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBroker(t *testing.T) *broker.Broker {
	t.Helper()
	b, err := broker.NewBroker(kernel.NewUUID(), "Pacific Freight", mustAddress(t))
	require.NoError(t, err)
	return b
}

func newLocation(t *testing.T) *location.Location {
	t.Helper()
	l, err := location.NewLocation(kernel.NewUUID(), "Pier T", mustAddress(t))
	require.NoError(t, err)
	return l
}

func TestCreateDispatchCommandHandler_Handle(t *testing.T) {
	t.Run("should create a draft dispatch when broker and locations are active", func(t *testing.T) {
		ctx := t.Context()
		b := newBroker(t)
		l := newLocation(t)
		cmd, err := commands.NewCreateDispatchCommand(b.ID(), []string{containerNumber}, exportPlan())
		require.NoError(t, err)

		brokerRepo := new(MockBrokerRepository)
		locationRepo := new(MockLocationRepository)
		dispatchRepo := new(MockDispatchRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		var added *dispatch.Dispatch
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("BrokerRepository").Return(brokerRepo).Once(),
			brokerRepo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
			uow.On("LocationRepository").Return(locationRepo).Once(),
			locationRepo.On("Get", ctx, mock.Anything).Return(l, nil).Times(3),
			uow.On("DispatchRepository").Return(dispatchRepo).Once(),
			dispatchRepo.On("Add", ctx, mock.AnythingOfType("*dispatch.Dispatch")).
				Run(func(args mock.Arguments) { added = args.Get(1).(*dispatch.Dispatch) }).
				Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCreateDispatchCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, added)
		assert.True(t, added.ID().IsEqual(cmd.DispatchID()))
		assert.Equal(t, dispatch.Draft, added.Status())
		assert.Equal(t, 3, added.TaskCount())
		for _, task := range added.Tasks() {
			require.NotNil(t, task.Container(), "single container is assigned to every container move")
		}
		uow.AssertExpectations(t)
		brokerRepo.AssertExpectations(t)
		locationRepo.AssertExpectations(t)
		dispatchRepo.AssertExpectations(t)
	})

	t.Run("should refuse an inactive broker", func(t *testing.T) {
		ctx := t.Context()
		b := newBroker(t)
		require.NoError(t, b.Deactivate())
		cmd, err := commands.NewCreateDispatchCommand(b.ID(), []string{containerNumber}, exportPlan())
		require.NoError(t, err)

		brokerRepo := new(MockBrokerRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("BrokerRepository").Return(brokerRepo).Once(),
			brokerRepo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewCreateDispatchCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, broker.ErrBrokerIsInactive)
		uow.AssertNotCalled(t, "DispatchRepository")
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should refuse a plan that references an inactive location", func(t *testing.T) {
		ctx := t.Context()
		b := newBroker(t)
		l := newLocation(t)
		require.NoError(t, l.Deactivate())
		cmd, err := commands.NewCreateDispatchCommand(b.ID(), []string{containerNumber}, exportPlan())
		require.NoError(t, err)

		brokerRepo := new(MockBrokerRepository)
		locationRepo := new(MockLocationRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("BrokerRepository").Return(brokerRepo).Once(),
			brokerRepo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
			uow.On("LocationRepository").Return(locationRepo).Once(),
			locationRepo.On("Get", ctx, mock.Anything).Return(l, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewCreateDispatchCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, location.ErrLocationIsInactive)
		uow.AssertNotCalled(t, "DispatchRepository")
	})

	t.Run("should surface plan rules of the aggregate", func(t *testing.T) {
		ctx := t.Context()
		b := newBroker(t)
		l := newLocation(t)
		ref := l.ID()
		cmd, err := commands.NewCreateDispatchCommand(b.ID(), []string{containerNumber}, []commands.PlannedTask{
			{Instruction: dispatch.PickupEmpty, LocationID: &ref},
		})
		require.NoError(t, err)

		brokerRepo := new(MockBrokerRepository)
		locationRepo := new(MockLocationRepository)
		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("BrokerRepository").Return(brokerRepo).Once()
		brokerRepo.On("Get", ctx, b.ID()).Return(b, nil).Once()
		uow.On("LocationRepository").Return(locationRepo).Once()
		locationRepo.On("Get", ctx, ref).Return(l, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err = commands.NewCreateDispatchCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, dispatch.ErrTooFewTasks)
		uow.AssertExpectations(t)
	})

	t.Run("should fail validation for a zero command", func(t *testing.T) {
		factory := new(MockUoWFactory)

		err := commands.NewCreateDispatchCommandHandler(factory).Handle(t.Context(), commands.CreateDispatchCommand{})

		require.ErrorIs(t, err, commands.ErrCreateDispatchCommandIsNotConstructed)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should return begin errors", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateDispatchCommand(kernel.NewUUID(), []string{containerNumber}, exportPlan())
		require.NoError(t, err)

		uow := new(MockUoW)
		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		err = commands.NewCreateDispatchCommandHandler(factory).Handle(ctx, cmd)

		require.EqualError(t, err, "begin error")
		uow.AssertNotCalled(t, "Rollback", ctx)
	})
}
