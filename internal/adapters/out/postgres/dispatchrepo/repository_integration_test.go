package dispatchrepo_test

import (
	"context"
	"testing"
	"time"

	"drayage/internal/adapters/out/postgres/dispatchrepo"
	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// DispatchRepositoryIntegrationTestSuite stores dispatches in a real PostgreSQL
// and checks that headers, containers and plans survive the round trip.
type DispatchRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *dispatchrepo.GormDispatchRepository
	tracker    *MockAggregateTracker
}

func (suite *DispatchRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.ContainerDTO{},
		&dispatchrepo.TaskDTO{},
	))
}

func (suite *DispatchRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dispatches, dispatch_containers, dispatch_tasks").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = dispatchrepo.NewGormDispatchRepository(suite.db, suite.tracker)
}

func (suite *DispatchRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestAdd_ValidDispatch_PersistsHeaderContainersAndTasks() {
	ctx := context.Background()
	d := suite.createDraftDispatch()

	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.assertRowCount(&dispatchrepo.DispatchDTO{}, 1)
	suite.assertRowCount(&dispatchrepo.ContainerDTO{}, 1)
	suite.assertRowCount(&dispatchrepo.TaskDTO{}, 3)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", d.ID(), d)
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	d := suite.createDraftDispatch()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	err := suite.repository.Add(ctx, d)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestAdd_NotConstructed_ReturnsError() {
	err := suite.repository.Add(context.Background(), &dispatch.Dispatch{})

	suite.Require().ErrorIs(err, dispatch.ErrDispatchIsNotConstructed)
	suite.assertRowCount(&dispatchrepo.DispatchDTO{}, 0)
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestGet_ExistingDispatch_RestoresPlanInPriorityOrder() {
	ctx := context.Background()
	d := suite.createDraftDispatch()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)

	suite.Equal(d.ID(), got.ID())
	suite.Equal(d.BrokerRef(), got.BrokerRef())
	suite.Nil(got.DriverRef())
	suite.Equal(dispatch.Draft, got.Status())
	suite.Equal(d.Instructions(), got.Instructions())
	suite.Require().Len(got.Containers(), 1)
	suite.Equal("CMAU1234567", got.Containers()[0].Number())

	for i, task := range got.Tasks() {
		want := d.Tasks()[i]
		suite.Equal(i+1, task.Priority())
		suite.Equal(want.ID(), task.ID())
		suite.Equal(*want.Location(), *task.Location())
		suite.Require().NotNil(task.Container(), "single container is assigned to every move")
		suite.Equal(dispatch.TaskNotStarted, task.Status())
	}

	appt := got.Tasks()[1].Appointment()
	suite.Require().NotNil(appt)
	suite.Equal(dispatch.TimeWindow, appt.Type())
	suite.True(appt.IsEqual(*d.Tasks()[1].Appointment()))
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestGet_NonExistentDispatch_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestUpdate_ProgressAndDriver_Persisted() {
	ctx := context.Background()
	d := suite.createDraftDispatch()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	driverRef := kernel.NewUUID()
	suite.Require().NoError(d.AssignDriver(driverRef))
	suite.Require().NoError(d.Start())
	suite.Require().NoError(d.StartTask(1))
	suite.Require().NoError(d.CompleteTask(1))
	suite.Require().NoError(d.StartTask(2))

	suite.Require().NoError(suite.repository.Update(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(dispatch.InProgress, got.Status())
	suite.Require().NotNil(got.DriverRef())
	suite.Equal(driverRef, *got.DriverRef())

	first := got.Tasks()[0]
	suite.Equal(dispatch.TaskCompleted, first.Status())
	suite.Require().NotNil(first.CompletedBy())
	suite.Equal(driverRef, *first.CompletedBy())
	suite.NotNil(first.CheckInAt())
	suite.NotNil(first.CheckOutAt())

	second := got.Tasks()[1]
	suite.Equal(dispatch.TaskInProgress, second.Status())
	suite.NotNil(second.CheckInAt())
	suite.Nil(second.CheckOutAt())
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestUpdate_RemovedTask_ReplacesStoredPlan() {
	ctx := context.Background()
	d := suite.createDraftDispatch()
	ref := kernel.NewUUID()
	extra, err := dispatch.NewTask(4, dispatch.TerminateChassis, &ref, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(d.AddTask(extra))
	suite.Require().NoError(suite.repository.Add(ctx, d))
	suite.assertRowCount(&dispatchrepo.TaskDTO{}, 4)

	suite.Require().NoError(d.RemoveTask(4))
	suite.Require().NoError(suite.repository.Update(ctx, d))

	got, err := suite.repository.Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.Equal(3, got.TaskCount())
	suite.assertRowCount(&dispatchrepo.TaskDTO{}, 3)
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestUpdate_NonExistentDispatch_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.createDraftDispatch())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertRowCount(&dispatchrepo.TaskDTO{}, 0)
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestDelete_CascadesToTasksAndContainers() {
	ctx := context.Background()
	d := suite.createDraftDispatch()
	suite.Require().NoError(suite.repository.Add(ctx, d))

	suite.Require().NoError(suite.repository.Delete(ctx, d.ID()))

	suite.assertRowCount(&dispatchrepo.DispatchDTO{}, 0)
	suite.assertRowCount(&dispatchrepo.ContainerDTO{}, 0)
	suite.assertRowCount(&dispatchrepo.TaskDTO{}, 0)

	err := suite.repository.Delete(ctx, d.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DispatchRepositoryIntegrationTestSuite) createDraftDispatch() *dispatch.Dispatch {
	container, err := dispatch.NewContainer("CMAU1234567")
	suite.Require().NoError(err)

	// Postgres keeps microseconds; whole seconds compare cleanly after the round trip.
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(2 * time.Hour)
	window, err := dispatch.NewAppointment(dispatch.TimeWindow, &start, &end)
	suite.Require().NoError(err)

	instructions := []dispatch.Instruction{dispatch.PickupEmpty, dispatch.LiveLoad, dispatch.Ingate}
	plan := make([]*dispatch.Task, 0, len(instructions))
	for i, instruction := range instructions {
		ref := kernel.NewUUID()
		var appt *dispatch.Appointment
		if instruction == dispatch.LiveLoad {
			appt = &window
		}
		task, tErr := dispatch.NewTask(i+1, instruction, &ref, nil, appt)
		suite.Require().NoError(tErr)
		plan = append(plan, task)
	}

	d, err := dispatch.NewDispatch(kernel.NewUUID(), kernel.NewUUID(), []dispatch.Container{container}, plan)
	suite.Require().NoError(err)
	return d
}

func (suite *DispatchRepositoryIntegrationTestSuite) assertRowCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestDispatchRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchRepositoryIntegrationTestSuite))
}
