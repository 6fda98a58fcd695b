package http

import (
	"context"
	"net/http"

	"drayage/internal/core/application/usecases/commands"
	"drayage/internal/core/application/usecases/queries"
	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CommandHandler runs one write use case.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

// QueryHandler runs one read use case.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateDispatch           CommandHandler[commands.CreateDispatchCommand]
	AssignDriver             CommandHandler[commands.AssignDriverCommand]
	RemoveDriver             CommandHandler[commands.RemoveDriverCommand]
	ChangeDispatchStatus     CommandHandler[commands.ChangeDispatchStatusCommand]
	AddTask                  CommandHandler[commands.AddTaskCommand]
	RemoveTask               CommandHandler[commands.RemoveTaskCommand]
	ChangeTaskStatus         CommandHandler[commands.ChangeTaskStatusCommand]
	SetAppointment           CommandHandler[commands.SetAppointmentCommand]
	RemoveAppointment        CommandHandler[commands.RemoveAppointmentCommand]
	AssignContainer          CommandHandler[commands.AssignContainerCommand]
	CreateDriver             CommandHandler[commands.CreateDriverCommand]
	ChangeDriverAvailability CommandHandler[commands.ChangeDriverAvailabilityCommand]
	CreateBroker             CommandHandler[commands.CreateBrokerCommand]
	ChangeBrokerStatus       CommandHandler[commands.ChangeBrokerStatusCommand]
	CreateLocation           CommandHandler[commands.CreateLocationCommand]
	ChangeLocationStatus     CommandHandler[commands.ChangeLocationStatusCommand]

	GetDispatch         QueryHandler[queries.GetDispatchQuery, queries.GetDispatchQueryResponse]
	GetAvailableDrivers QueryHandler[queries.GetAvailableDriversQuery, []queries.GetAvailableDriversQueryResponse]
}

// Server implements ServerInterface. It translates HTTP payloads into commands and
// queries and renders their results.
type Server struct {
	h Handlers
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// CreateDispatch handles POST /api/v1/dispatches.
func (s *Server) CreateDispatch(ctx echo.Context) error {
	var body NewDispatch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	brokerID, err := kernel.UUIDFromBytes(body.BrokerID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	plan := make([]commands.PlannedTask, 0, len(body.Tasks))
	for _, t := range body.Tasks {
		planned, pErr := plannedTask(t)
		if pErr != nil {
			return writeError(ctx, pErr)
		}
		plan = append(plan, planned)
	}

	cmd, err := commands.NewCreateDispatchCommand(brokerID, body.Containers, plan)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.CreateDispatch.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.DispatchID().Bytes()})
}

// GetDispatch handles GET /api/v1/dispatches/{dispatchId}.
func (s *Server) GetDispatch(ctx echo.Context, dispatchID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(dispatchID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetDispatchQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.h.GetDispatch.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dispatchFromView(view))
}

// AssignDriver handles PUT /api/v1/dispatches/{dispatchId}/driver.
func (s *Server) AssignDriver(ctx echo.Context, dispatchID openapi_types.UUID) error {
	var body DriverAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignDriverCommand(ref(dispatchID), ref(body.DriverID))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.AssignDriver.Handle(ctx.Request().Context(), cmd))
}

// RemoveDriver handles DELETE /api/v1/dispatches/{dispatchId}/driver.
func (s *Server) RemoveDriver(ctx echo.Context, dispatchID openapi_types.UUID) error {
	cmd, err := commands.NewRemoveDriverCommand(ref(dispatchID))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.RemoveDriver.Handle(ctx.Request().Context(), cmd))
}

// ChangeDispatchStatus handles POST /api/v1/dispatches/{dispatchId}/transitions.
func (s *Server) ChangeDispatchStatus(ctx echo.Context, dispatchID openapi_types.UUID) error {
	var body DispatchTransition
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var driverID *kernel.UUID
	if body.DriverID != nil {
		id := ref(*body.DriverID)
		driverID = &id
	}

	cmd, err := commands.NewChangeDispatchStatusCommand(ref(dispatchID), body.Action, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.ChangeDispatchStatus.Handle(ctx.Request().Context(), cmd))
}

// AddTask handles POST /api/v1/dispatches/{dispatchId}/tasks.
func (s *Server) AddTask(ctx echo.Context, dispatchID openapi_types.UUID) error {
	var body NewTask
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	planned, err := plannedTask(body.PlannedTask)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddTaskCommand(ref(dispatchID), body.Priority, planned)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.AddTask.Handle(ctx.Request().Context(), cmd))
}

// RemoveTask handles DELETE /api/v1/dispatches/{dispatchId}/tasks/{priority}.
func (s *Server) RemoveTask(ctx echo.Context, dispatchID openapi_types.UUID, priority int) error {
	cmd, err := commands.NewRemoveTaskCommand(ref(dispatchID), priority)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.RemoveTask.Handle(ctx.Request().Context(), cmd))
}

// ChangeTaskStatus handles POST /api/v1/dispatches/{dispatchId}/tasks/{priority}/transitions.
func (s *Server) ChangeTaskStatus(ctx echo.Context, dispatchID openapi_types.UUID, priority int) error {
	var body Action
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeTaskStatusCommand(ref(dispatchID), priority, body.Action)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.ChangeTaskStatus.Handle(ctx.Request().Context(), cmd))
}

// SetAppointment handles PUT /api/v1/dispatches/{dispatchId}/tasks/{priority}/appointment.
func (s *Server) SetAppointment(ctx echo.Context, dispatchID openapi_types.UUID, priority int) error {
	var body Appointment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	appt, err := appointment(body)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetAppointmentCommand(ref(dispatchID), priority, appt)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.SetAppointment.Handle(ctx.Request().Context(), cmd))
}

// RemoveAppointment handles DELETE /api/v1/dispatches/{dispatchId}/tasks/{priority}/appointment.
func (s *Server) RemoveAppointment(ctx echo.Context, dispatchID openapi_types.UUID, priority int) error {
	cmd, err := commands.NewRemoveAppointmentCommand(ref(dispatchID), priority)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.RemoveAppointment.Handle(ctx.Request().Context(), cmd))
}

// AssignContainer handles POST /api/v1/dispatches/{dispatchId}/containers/{container}/assignments.
func (s *Server) AssignContainer(ctx echo.Context, dispatchID openapi_types.UUID, container string) error {
	var body ContainerAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignContainerCommand(ref(dispatchID), container, body.Priorities)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.AssignContainer.Handle(ctx.Request().Context(), cmd))
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(body.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.DriverID().Bytes()})
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	drivers, err := s.h.GetAvailableDrivers.Handle(ctx.Request().Context(), queries.NewGetAvailableDriversQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{ID: d.ID.Bytes(), Name: d.Name}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeDriverAvailability handles POST /api/v1/drivers/{driverId}/availability.
func (s *Server) ChangeDriverAvailability(ctx echo.Context, driverID openapi_types.UUID) error {
	var body Action
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeDriverAvailabilityCommand(ref(driverID), body.Action)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.ChangeDriverAvailability.Handle(ctx.Request().Context(), cmd))
}

// CreateBroker handles POST /api/v1/brokers.
func (s *Server) CreateBroker(ctx echo.Context) error {
	var body NewReference
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	addr, err := address(body.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateBrokerCommand(body.Name, addr)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.CreateBroker.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.BrokerID().Bytes()})
}

// ChangeBrokerStatus handles POST /api/v1/brokers/{brokerId}/status.
func (s *Server) ChangeBrokerStatus(ctx echo.Context, brokerID openapi_types.UUID) error {
	var body Action
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeBrokerStatusCommand(ref(brokerID), body.Action)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.ChangeBrokerStatus.Handle(ctx.Request().Context(), cmd))
}

// CreateLocation handles POST /api/v1/locations.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var body NewReference
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	addr, err := address(body.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateLocationCommand(body.Name, addr)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.CreateLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: cmd.LocationID().Bytes()})
}

// ChangeLocationStatus handles POST /api/v1/locations/{locationId}/status.
func (s *Server) ChangeLocationStatus(ctx echo.Context, locationID openapi_types.UUID) error {
	var body Action
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeLocationStatusCommand(ref(locationID), body.Action)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.noContent(ctx, s.h.ChangeLocationStatus.Handle(ctx.Request().Context(), cmd))
}

func (s *Server) noContent(ctx echo.Context, err error) error {
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ref converts a bound path or body UUID. The value was already parsed, so the
// conversion cannot fail.
func ref(id openapi_types.UUID) kernel.UUID {
	u, _ := kernel.UUIDFromBytes(id[:])
	return u
}

func plannedTask(t PlannedTask) (commands.PlannedTask, error) {
	instruction, err := dispatch.ParseInstruction(t.Instruction)
	if err != nil {
		return commands.PlannedTask{}, err
	}

	planned := commands.PlannedTask{Instruction: instruction}

	if t.LocationID != nil {
		id := ref(*t.LocationID)
		planned.LocationID = &id
	}

	if t.Container != nil {
		c, cErr := dispatch.NewContainer(*t.Container)
		if cErr != nil {
			return commands.PlannedTask{}, cErr
		}
		planned.Container = &c
	}

	if t.Appointment != nil {
		a, aErr := appointment(*t.Appointment)
		if aErr != nil {
			return commands.PlannedTask{}, aErr
		}
		planned.Appointment = &a
	}

	return planned, nil
}

func appointment(a Appointment) (dispatch.Appointment, error) {
	kind, err := dispatch.ParseAppointmentType(a.Type)
	if err != nil {
		return dispatch.Appointment{}, err
	}
	return dispatch.NewAppointment(kind, a.Start, a.End)
}

func address(a Address) (kernel.Address, error) {
	return kernel.NewAddress(a.Street, a.City, a.State, a.Zipcode)
}

func dispatchFromView(view queries.GetDispatchQueryResponse) Dispatch {
	response := Dispatch{
		ID:         view.ID.Bytes(),
		BrokerID:   view.BrokerID.Bytes(),
		DriverID:   uuidPtr(view.DriverID),
		Status:     view.Status,
		Containers: view.Containers,
		Tasks:      make([]Task, len(view.Tasks)),
	}
	if response.Containers == nil {
		response.Containers = []string{}
	}

	for i, t := range view.Tasks {
		task := Task{
			Priority:    t.Priority,
			Instruction: t.Instruction,
			LocationID:  uuidPtr(t.LocationID),
			Container:   t.Container,
			Status:      t.Status,
			CompletedBy: uuidPtr(t.CompletedBy),
			CheckInAt:   t.CheckInAt,
			CheckOutAt:  t.CheckOutAt,
		}
		if t.AppointmentType != nil {
			task.Appointment = &Appointment{
				Type:  *t.AppointmentType,
				Start: t.AppointmentStart,
				End:   t.AppointmentEnd,
			}
		}
		response.Tasks[i] = task
	}

	return response
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := id.Bytes()
	return &u
}
