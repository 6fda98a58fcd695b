package cmd

import (
	"log/slog"

	httpin "drayage/internal/adapters/in/http"
	"drayage/internal/adapters/out/postgres"
	metrics "drayage/internal/adapters/out/prometheus"
	"drayage/internal/core/application/usecases/commands"
	"drayage/internal/core/application/usecases/queries"
	"drayage/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.DispatchMetrics
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	dispatchMetrics, err := metrics.NewDispatchMetrics(registry)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:   registry,
		metrics:    dispatchMetrics,
	}, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoW() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) planUoW() commands.PlanUoWFactory {
	return FuncPlanUoWFactory(func() commands.PlanUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoW() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) brokerUoW() commands.BrokerUoWFactory {
	return FuncBrokerUoWFactory(func() commands.BrokerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) locationUoW() commands.LocationUoWFactory {
	return FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDispatchCommandHandler() commands.CreateDispatchCommandHandler {
	return commands.NewCreateDispatchCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRemoveDriverCommandHandler() commands.RemoveDriverCommandHandler {
	return commands.NewRemoveDriverCommandHandler(c.dispatchUoW())
}

func (c *CompositionRoot) CreateChangeDispatchStatusCommandHandler() commands.ChangeDispatchStatusCommandHandler {
	return commands.NewChangeDispatchStatusCommandHandler(c.uow(), c.metrics)
}

func (c *CompositionRoot) CreateAddTaskCommandHandler() commands.AddTaskCommandHandler {
	return commands.NewAddTaskCommandHandler(c.planUoW())
}

func (c *CompositionRoot) CreateRemoveTaskCommandHandler() commands.RemoveTaskCommandHandler {
	return commands.NewRemoveTaskCommandHandler(c.dispatchUoW())
}

func (c *CompositionRoot) CreateChangeTaskStatusCommandHandler() commands.ChangeTaskStatusCommandHandler {
	return commands.NewChangeTaskStatusCommandHandler(c.dispatchUoW())
}

func (c *CompositionRoot) CreateSetAppointmentCommandHandler() commands.SetAppointmentCommandHandler {
	return commands.NewSetAppointmentCommandHandler(c.dispatchUoW())
}

func (c *CompositionRoot) CreateRemoveAppointmentCommandHandler() commands.RemoveAppointmentCommandHandler {
	return commands.NewRemoveAppointmentCommandHandler(c.dispatchUoW())
}

func (c *CompositionRoot) CreateAssignContainerCommandHandler() commands.AssignContainerCommandHandler {
	return commands.NewAssignContainerCommandHandler(c.dispatchUoW())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoW())
}

func (c *CompositionRoot) CreateChangeDriverAvailabilityCommandHandler() commands.ChangeDriverAvailabilityCommandHandler {
	return commands.NewChangeDriverAvailabilityCommandHandler(c.driverUoW())
}

func (c *CompositionRoot) CreateCreateBrokerCommandHandler() commands.CreateBrokerCommandHandler {
	return commands.NewCreateBrokerCommandHandler(c.brokerUoW())
}

func (c *CompositionRoot) CreateChangeBrokerStatusCommandHandler() commands.ChangeBrokerStatusCommandHandler {
	return commands.NewChangeBrokerStatusCommandHandler(c.brokerUoW())
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	return commands.NewCreateLocationCommandHandler(c.locationUoW())
}

func (c *CompositionRoot) CreateChangeLocationStatusCommandHandler() commands.ChangeLocationStatusCommandHandler {
	return commands.NewChangeLocationStatusCommandHandler(c.locationUoW())
}

func (c *CompositionRoot) CreateGetDispatchQueryHandler() queries.GetDispatchQueryHandler {
	return queries.NewGetDispatchQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchStatusCountsQueryHandler() queries.GetDispatchStatusCountsQueryHandler {
	return queries.NewGetDispatchStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDispatchStatusCountsQueryHandler(),
		c.metrics,
		c.config.StatusSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateDispatch:           c.CreateCreateDispatchCommandHandler(),
		AssignDriver:             c.CreateAssignDriverCommandHandler(),
		RemoveDriver:             c.CreateRemoveDriverCommandHandler(),
		ChangeDispatchStatus:     c.CreateChangeDispatchStatusCommandHandler(),
		AddTask:                  c.CreateAddTaskCommandHandler(),
		RemoveTask:               c.CreateRemoveTaskCommandHandler(),
		ChangeTaskStatus:         c.CreateChangeTaskStatusCommandHandler(),
		SetAppointment:           c.CreateSetAppointmentCommandHandler(),
		RemoveAppointment:        c.CreateRemoveAppointmentCommandHandler(),
		AssignContainer:          c.CreateAssignContainerCommandHandler(),
		CreateDriver:             c.CreateCreateDriverCommandHandler(),
		ChangeDriverAvailability: c.CreateChangeDriverAvailabilityCommandHandler(),
		CreateBroker:             c.CreateCreateBrokerCommandHandler(),
		ChangeBrokerStatus:       c.CreateChangeBrokerStatusCommandHandler(),
		CreateLocation:           c.CreateCreateLocationCommandHandler(),
		ChangeLocationStatus:     c.CreateChangeLocationStatusCommandHandler(),
		GetDispatch:              c.CreateGetDispatchQueryHandler(),
		GetAvailableDrivers:      c.CreateGetAvailableDriversQueryHandler(),
	})
}

func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	return httpin.NewEcho(c.CreateHTTPServer(), c.registry, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncPlanUoWFactory func() commands.PlanUoW

func (f FuncPlanUoWFactory) Create() commands.PlanUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncBrokerUoWFactory func() commands.BrokerUoW

func (f FuncBrokerUoWFactory) Create() commands.BrokerUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}
