package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "drayage/internal/adapters/out/postgres"
	"drayage/internal/core/application/usecases/queries"
	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/driver"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/core/ports"
	"drayage/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersTestSuite seeds aggregates through the unit of work and reads them
// back through the raw SQL query handlers.
type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE dispatches, dispatch_containers, dispatch_tasks, drivers CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetDispatch_ReturnsHeaderContainersAndOrderedTasks() {
	ctx := context.Background()
	drv := suite.addDriver("Maria Lopez")
	d := suite.newDispatch()
	suite.Require().NoError(d.AssignDriver(drv.ID()))
	suite.Require().NoError(d.Start())
	suite.Require().NoError(d.StartTask(1))
	suite.addDispatch(d)

	query, err := queries.NewGetDispatchQuery(d.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetDispatchQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(d.ID(), view.ID)
	suite.Equal(d.BrokerRef(), view.BrokerID)
	suite.Require().NotNil(view.DriverID)
	suite.Equal(drv.ID(), *view.DriverID)
	suite.Equal("IN_PROGRESS", view.Status)
	suite.Equal([]string{"CMAU1234567"}, view.Containers)

	suite.Require().Len(view.Tasks, 3)
	suite.Equal([]string{"PICKUP_EMPTY", "LIVE_LOAD", "INGATE"}, []string{
		view.Tasks[0].Instruction, view.Tasks[1].Instruction, view.Tasks[2].Instruction,
	})
	suite.Equal(1, view.Tasks[0].Priority)
	suite.Equal("IN_PROGRESS", view.Tasks[0].Status)
	suite.NotNil(view.Tasks[0].CheckInAt)
	suite.Nil(view.Tasks[0].CheckOutAt)
	suite.Require().NotNil(view.Tasks[0].Container)
	suite.Equal("CMAU1234567", *view.Tasks[0].Container)
	suite.Nil(view.Tasks[0].AppointmentType)

	suite.Require().NotNil(view.Tasks[1].AppointmentType)
	suite.Equal("OPEN", *view.Tasks[1].AppointmentType)
	suite.Equal("NOT_STARTED", view.Tasks[1].Status)
}

func (suite *QueryHandlersTestSuite) TestGetDispatch_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetDispatchQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetDispatchQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetDispatchStatusCounts_IncludesEmptyStatuses() {
	suite.addDispatch(suite.newDispatch())
	suite.addDispatch(suite.newDispatch())

	started := suite.newDispatch()
	suite.Require().NoError(started.AssignDriver(kernel.NewUUID()))
	suite.Require().NoError(started.Start())
	suite.addDispatch(started)

	counts, err := queries.NewGetDispatchStatusCountsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetDispatchStatusCountsQuery())
	suite.Require().NoError(err)

	suite.Equal(queries.GetDispatchStatusCountsQueryResponse{
		"DRAFT":       2,
		"IN_PROGRESS": 1,
		"PAUSED":      0,
		"COMPLETED":   0,
		"CANCELLED":   0,
	}, counts)
}

func (suite *QueryHandlersTestSuite) TestGetAvailableDrivers_ReturnsOnlyAvailableOrderedByName() {
	zoe := suite.addDriver("Zoe Turner")
	adam := suite.addDriver("Adam Reyes")

	busy, err := driver.NewDriver(kernel.NewUUID(), "Bea Chen")
	suite.Require().NoError(err)
	suite.Require().NoError(busy.SitOut())
	suite.addDriverAggregate(busy)

	result, err := queries.NewGetAvailableDriversQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetAvailableDriversQuery())
	suite.Require().NoError(err)

	suite.Equal([]queries.GetAvailableDriversQueryResponse{
		{ID: adam.ID(), Name: "Adam Reyes"},
		{ID: zoe.ID(), Name: "Zoe Turner"},
	}, result)
}

func (suite *QueryHandlersTestSuite) TestGetAvailableDrivers_EmptyDatabase_ReturnsEmptySlice() {
	result, err := queries.NewGetAvailableDriversQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetAvailableDriversQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := queries.NewGetAvailableDriversQueryHandler(suite.db).
		Handle(context.Background(), queries.GetAvailableDriversQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetAvailableDriversQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) newDispatch() *dispatch.Dispatch {
	container, err := dispatch.NewContainer("CMAU1234567")
	suite.Require().NoError(err)
	open, err := dispatch.NewAppointment(dispatch.Open, nil, nil)
	suite.Require().NoError(err)

	instructions := []dispatch.Instruction{dispatch.PickupEmpty, dispatch.LiveLoad, dispatch.Ingate}
	plan := make([]*dispatch.Task, 0, len(instructions))
	for i, instruction := range instructions {
		ref := kernel.NewUUID()
		var appt *dispatch.Appointment
		if instruction == dispatch.LiveLoad {
			appt = &open
		}
		task, tErr := dispatch.NewTask(i+1, instruction, &ref, nil, appt)
		suite.Require().NoError(tErr)
		plan = append(plan, task)
	}

	d, err := dispatch.NewDispatch(kernel.NewUUID(), kernel.NewUUID(), []dispatch.Container{container}, plan)
	suite.Require().NoError(err)
	return d
}

func (suite *QueryHandlersTestSuite) addDispatch(d *dispatch.Dispatch) {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.DispatchRepository().Add(context.Background(), d))
}

func (suite *QueryHandlersTestSuite) addDriver(name string) *driver.Driver {
	drv, err := driver.NewDriver(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	suite.addDriverAggregate(drv)
	return drv
}

func (suite *QueryHandlersTestSuite) addDriverAggregate(drv *driver.Driver) {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.DriverRepository().Add(context.Background(), drv))
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
