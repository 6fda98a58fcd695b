package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers of openapi.yaml.
type ServerInterface interface {
	// Book a dispatch with its plan
	// (POST /api/v1/dispatches)
	CreateDispatch(ctx echo.Context) error
	// Get a dispatch with its tasks
	// (GET /api/v1/dispatches/{dispatchId})
	GetDispatch(ctx echo.Context, dispatchID openapi_types.UUID) error
	// Assign a driver to a draft dispatch
	// (PUT /api/v1/dispatches/{dispatchId}/driver)
	AssignDriver(ctx echo.Context, dispatchID openapi_types.UUID) error
	// Remove the driver of a draft dispatch
	// (DELETE /api/v1/dispatches/{dispatchId}/driver)
	RemoveDriver(ctx echo.Context, dispatchID openapi_types.UUID) error
	// Apply a lifecycle transition
	// (POST /api/v1/dispatches/{dispatchId}/transitions)
	ChangeDispatchStatus(ctx echo.Context, dispatchID openapi_types.UUID) error
	// Insert a task into the plan
	// (POST /api/v1/dispatches/{dispatchId}/tasks)
	AddTask(ctx echo.Context, dispatchID openapi_types.UUID) error
	// Remove a task from the plan
	// (DELETE /api/v1/dispatches/{dispatchId}/tasks/{priority})
	RemoveTask(ctx echo.Context, dispatchID openapi_types.UUID, priority int) error
	// Apply a task transition
	// (POST /api/v1/dispatches/{dispatchId}/tasks/{priority}/transitions)
	ChangeTaskStatus(ctx echo.Context, dispatchID openapi_types.UUID, priority int) error
	// Set the appointment of a task
	// (PUT /api/v1/dispatches/{dispatchId}/tasks/{priority}/appointment)
	SetAppointment(ctx echo.Context, dispatchID openapi_types.UUID, priority int) error
	// Remove the appointment of a task
	// (DELETE /api/v1/dispatches/{dispatchId}/tasks/{priority}/appointment)
	RemoveAppointment(ctx echo.Context, dispatchID openapi_types.UUID, priority int) error
	// Assign a container to tasks
	// (POST /api/v1/dispatches/{dispatchId}/containers/{container}/assignments)
	AssignContainer(ctx echo.Context, dispatchID openapi_types.UUID, container string) error
	// Register a driver
	// (POST /api/v1/drivers)
	CreateDriver(ctx echo.Context) error
	// List available drivers
	// (GET /api/v1/drivers/available)
	GetAvailableDrivers(ctx echo.Context) error
	// Change driver availability
	// (POST /api/v1/drivers/{driverId}/availability)
	ChangeDriverAvailability(ctx echo.Context, driverID openapi_types.UUID) error
	// Register a broker
	// (POST /api/v1/brokers)
	CreateBroker(ctx echo.Context) error
	// Activate or deactivate a broker
	// (POST /api/v1/brokers/{brokerId}/status)
	ChangeBrokerStatus(ctx echo.Context, brokerID openapi_types.UUID) error
	// Register a location
	// (POST /api/v1/locations)
	CreateLocation(ctx echo.Context) error
	// Activate or deactivate a location
	// (POST /api/v1/locations/{locationId}/status)
	ChangeLocationStatus(ctx echo.Context, locationID openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathParam(ctx echo.Context, name string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func (w *ServerInterfaceWrapper) CreateDispatch(ctx echo.Context) error {
	return w.Handler.CreateDispatch(ctx)
}

func (w *ServerInterfaceWrapper) GetDispatch(ctx echo.Context) error {
	var dispatchID openapi_types.UUID
	if err := bindPathParam(ctx, "dispatchId", &dispatchID); err != nil {
		return err
	}
	return w.Handler.GetDispatch(ctx, dispatchID)
}

func (w *ServerInterfaceWrapper) AssignDriver(ctx echo.Context) error {
	var dispatchID openapi_types.UUID
	if err := bindPathParam(ctx, "dispatchId", &dispatchID); err != nil {
		return err
	}
	return w.Handler.AssignDriver(ctx, dispatchID)
}

func (w *ServerInterfaceWrapper) RemoveDriver(ctx echo.Context) error {
	var dispatchID openapi_types.UUID
	if err := bindPathParam(ctx, "dispatchId", &dispatchID); err != nil {
		return err
	}
	return w.Handler.RemoveDriver(ctx, dispatchID)
}

func (w *ServerInterfaceWrapper) ChangeDispatchStatus(ctx echo.Context) error {
	var dispatchID openapi_types.UUID
	if err := bindPathParam(ctx, "dispatchId", &dispatchID); err != nil {
		return err
	}
	return w.Handler.ChangeDispatchStatus(ctx, dispatchID)
}

func (w *ServerInterfaceWrapper) AddTask(ctx echo.Context) error {
	var dispatchID openapi_types.UUID
	if err := bindPathParam(ctx, "dispatchId", &dispatchID); err != nil {
		return err
	}
	return w.Handler.AddTask(ctx, dispatchID)
}

func (w *ServerInterfaceWrapper) taskParams(ctx echo.Context) (openapi_types.UUID, int, error) {
	var dispatchID openapi_types.UUID
	if err := bindPathParam(ctx, "dispatchId", &dispatchID); err != nil {
		return dispatchID, 0, err
	}
	var priority int
	if err := bindPathParam(ctx, "priority", &priority); err != nil {
		return dispatchID, 0, err
	}
	return dispatchID, priority, nil
}

func (w *ServerInterfaceWrapper) RemoveTask(ctx echo.Context) error {
	dispatchID, priority, err := w.taskParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveTask(ctx, dispatchID, priority)
}

func (w *ServerInterfaceWrapper) ChangeTaskStatus(ctx echo.Context) error {
	dispatchID, priority, err := w.taskParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeTaskStatus(ctx, dispatchID, priority)
}

func (w *ServerInterfaceWrapper) SetAppointment(ctx echo.Context) error {
	dispatchID, priority, err := w.taskParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetAppointment(ctx, dispatchID, priority)
}

func (w *ServerInterfaceWrapper) RemoveAppointment(ctx echo.Context) error {
	dispatchID, priority, err := w.taskParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveAppointment(ctx, dispatchID, priority)
}

func (w *ServerInterfaceWrapper) AssignContainer(ctx echo.Context) error {
	var dispatchID openapi_types.UUID
	if err := bindPathParam(ctx, "dispatchId", &dispatchID); err != nil {
		return err
	}
	var container string
	if err := bindPathParam(ctx, "container", &container); err != nil {
		return err
	}
	return w.Handler.AssignContainer(ctx, dispatchID, container)
}

func (w *ServerInterfaceWrapper) CreateDriver(ctx echo.Context) error {
	return w.Handler.CreateDriver(ctx)
}

func (w *ServerInterfaceWrapper) GetAvailableDrivers(ctx echo.Context) error {
	return w.Handler.GetAvailableDrivers(ctx)
}

func (w *ServerInterfaceWrapper) ChangeDriverAvailability(ctx echo.Context) error {
	var driverID openapi_types.UUID
	if err := bindPathParam(ctx, "driverId", &driverID); err != nil {
		return err
	}
	return w.Handler.ChangeDriverAvailability(ctx, driverID)
}

func (w *ServerInterfaceWrapper) CreateBroker(ctx echo.Context) error {
	return w.Handler.CreateBroker(ctx)
}

func (w *ServerInterfaceWrapper) ChangeBrokerStatus(ctx echo.Context) error {
	var brokerID openapi_types.UUID
	if err := bindPathParam(ctx, "brokerId", &brokerID); err != nil {
		return err
	}
	return w.Handler.ChangeBrokerStatus(ctx, brokerID)
}

func (w *ServerInterfaceWrapper) CreateLocation(ctx echo.Context) error {
	return w.Handler.CreateLocation(ctx)
}

func (w *ServerInterfaceWrapper) ChangeLocationStatus(ctx echo.Context) error {
	var locationID openapi_types.UUID
	if err := bindPathParam(ctx, "locationId", &locationID); err != nil {
		return err
	}
	return w.Handler.ChangeLocationStatus(ctx, locationID)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/dispatches", w.CreateDispatch)
	router.GET(baseURL+"/api/v1/dispatches/:dispatchId", w.GetDispatch)
	router.PUT(baseURL+"/api/v1/dispatches/:dispatchId/driver", w.AssignDriver)
	router.DELETE(baseURL+"/api/v1/dispatches/:dispatchId/driver", w.RemoveDriver)
	router.POST(baseURL+"/api/v1/dispatches/:dispatchId/transitions", w.ChangeDispatchStatus)
	router.POST(baseURL+"/api/v1/dispatches/:dispatchId/tasks", w.AddTask)
	router.DELETE(baseURL+"/api/v1/dispatches/:dispatchId/tasks/:priority", w.RemoveTask)
	router.POST(baseURL+"/api/v1/dispatches/:dispatchId/tasks/:priority/transitions", w.ChangeTaskStatus)
	router.PUT(baseURL+"/api/v1/dispatches/:dispatchId/tasks/:priority/appointment", w.SetAppointment)
	router.DELETE(baseURL+"/api/v1/dispatches/:dispatchId/tasks/:priority/appointment", w.RemoveAppointment)
	router.POST(baseURL+"/api/v1/dispatches/:dispatchId/containers/:container/assignments", w.AssignContainer)
	router.POST(baseURL+"/api/v1/drivers", w.CreateDriver)
	router.GET(baseURL+"/api/v1/drivers/available", w.GetAvailableDrivers)
	router.POST(baseURL+"/api/v1/drivers/:driverId/availability", w.ChangeDriverAvailability)
	router.POST(baseURL+"/api/v1/brokers", w.CreateBroker)
	router.POST(baseURL+"/api/v1/brokers/:brokerId/status", w.ChangeBrokerStatus)
	router.POST(baseURL+"/api/v1/locations", w.CreateLocation)
	router.POST(baseURL+"/api/v1/locations/:locationId/status", w.ChangeLocationStatus)
}
