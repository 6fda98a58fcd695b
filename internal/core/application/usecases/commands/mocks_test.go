package commands_test

import (
	"context"
	"testing"

	"drayage/internal/core/application/usecases/commands"
	"drayage/internal/core/domain/model/broker"
	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/driver"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/core/domain/model/location"
	"drayage/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDispatchRepository struct{ mock.Mock }

func (m *MockDispatchRepository) Add(ctx context.Context, d *dispatch.Dispatch) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDispatchRepository) Update(ctx context.Context, d *dispatch.Dispatch) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDispatchRepository) Get(ctx context.Context, id kernel.UUID) (*dispatch.Dispatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatch.Dispatch), args.Error(1)
}

func (m *MockDispatchRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

type MockBrokerRepository struct{ mock.Mock }

func (m *MockBrokerRepository) Add(ctx context.Context, b *broker.Broker) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBrokerRepository) Update(ctx context.Context, b *broker.Broker) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBrokerRepository) Get(ctx context.Context, id kernel.UUID) (*broker.Broker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*broker.Broker), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DispatchRepository() ports.DispatchRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatchRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) BrokerRepository() ports.BrokerRepository {
	args := m.Called()
	return args.Get(0).(ports.BrokerRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockPlanUoWFactory struct{ mock.Mock }

func (m *MockPlanUoWFactory) Create() commands.PlanUoW {
	args := m.Called()
	return args.Get(0).(commands.PlanUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockBrokerUoWFactory struct{ mock.Mock }

func (m *MockBrokerUoWFactory) Create() commands.BrokerUoW {
	args := m.Called()
	return args.Get(0).(commands.BrokerUoW)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockDispatchMetrics struct{ mock.Mock }

func (m *MockDispatchMetrics) ObserveTransition(action, outcome string) {
	m.Called(action, outcome)
}

func (m *MockDispatchMetrics) ObserveStartRollback() {
	m.Called()
}

func (m *MockDispatchMetrics) SetDispatchCounts(counts map[string]int) {
	m.Called(counts)
}

const containerNumber = "CMAU1234567"

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("1 Harbor Way", "Long Beach", "CA", "90802")
	require.NoError(t, err)
	return addr
}

// newDraftDispatch builds a located export plan (pickup empty, live load, ingate)
// with an open appointment on the live load.
func newDraftDispatch(t *testing.T) *dispatch.Dispatch {
	t.Helper()

	container, err := dispatch.NewContainer(containerNumber)
	require.NoError(t, err)
	open, err := dispatch.NewAppointment(dispatch.Open, nil, nil)
	require.NoError(t, err)

	instructions := []dispatch.Instruction{dispatch.PickupEmpty, dispatch.LiveLoad, dispatch.Ingate}
	plan := make([]*dispatch.Task, 0, len(instructions))
	for i, instruction := range instructions {
		ref := kernel.NewUUID()
		var appt *dispatch.Appointment
		if instruction == dispatch.LiveLoad {
			appt = &open
		}
		task, err := dispatch.NewTask(i+1, instruction, &ref, nil, appt)
		require.NoError(t, err)
		plan = append(plan, task)
	}

	d, err := dispatch.NewDispatch(kernel.NewUUID(), kernel.NewUUID(), []dispatch.Container{container}, plan)
	require.NoError(t, err)
	return d
}

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Maria Lopez")
	require.NoError(t, err)
	return d
}

// newAssignedDispatch returns a draft dispatch with drv assigned.
func newAssignedDispatch(t *testing.T, drv *driver.Driver) *dispatch.Dispatch {
	t.Helper()
	d := newDraftDispatch(t)
	require.NoError(t, d.AssignDriver(drv.ID()))
	return d
}

// newRunningDispatch returns an in-progress dispatch operated by drv.
func newRunningDispatch(t *testing.T, drv *driver.Driver) *dispatch.Dispatch {
	t.Helper()
	d := newAssignedDispatch(t, drv)
	require.NoError(t, d.Start())
	require.NoError(t, drv.BeginOperating())
	return d
}
