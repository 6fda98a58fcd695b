package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"drayage/internal/adapters/out/postgres/driverrepo"
	"drayage/internal/core/domain/model/driver"
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

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ValidDriver_Success() {
	ctx := context.Background()
	drv := suite.createTestDriver("Maria Lopez")
	suite.tracker.On("TrackAggregate", drv.ID(), drv).Once()

	suite.Require().NoError(suite.repository.Add(ctx, drv))

	got, err := suite.repository.Get(ctx, drv.ID())
	suite.Require().NoError(err)
	suite.True(drv.IsEqual(got))
	suite.Equal("Maria Lopez", got.Name())
	suite.Equal(driver.Available, got.Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateDriver_ReturnsAlreadyExists() {
	ctx := context.Background()
	drv := suite.createTestDriver("Maria Lopez")
	suite.tracker.On("TrackAggregate", drv.ID(), drv).Once()
	suite.Require().NoError(suite.repository.Add(ctx, drv))

	err := suite.repository.Add(ctx, drv)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	testCases := []struct {
		name     string
		change   func(*driver.Driver) error
		expected driver.Status
	}{
		{
			name:     "begin operating",
			change:   (*driver.Driver).BeginOperating,
			expected: driver.Operating,
		},
		{
			name:     "sit out",
			change:   (*driver.Driver).SitOut,
			expected: driver.Unavailable,
		},
		{
			name:     "deactivate",
			change:   (*driver.Driver).Deactivate,
			expected: driver.Deactivated,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			ctx := context.Background()
			drv := suite.createTestDriver("Sam Ortiz")
			suite.tracker.On("TrackAggregate", drv.ID(), drv).Twice()
			suite.Require().NoError(suite.repository.Add(ctx, drv))

			suite.Require().NoError(tc.change(drv))
			suite.Require().NoError(suite.repository.Update(ctx, drv))

			got, err := suite.repository.Get(ctx, drv.ID())
			suite.Require().NoError(err)
			suite.Equal(tc.expected, got.Status())
		})
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_NonExistentDriver_ReturnsNotFound() {
	drv := suite.createTestDriver("Sam Ortiz")

	err := suite.repository.Update(context.Background(), drv)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(name string) *driver.Driver {
	drv, err := driver.NewDriver(kernel.NewUUID(), name)
	suite.Require().NoError(err)
	return drv
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
