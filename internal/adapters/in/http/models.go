package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID openapi_types.UUID `json:"id"`
}

type Appointment struct {
	Type  string     `json:"type"`
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

type PlannedTask struct {
	Instruction string              `json:"instruction"`
	LocationID  *openapi_types.UUID `json:"locationId,omitempty"`
	Container   *string             `json:"container,omitempty"`
	Appointment *Appointment        `json:"appointment,omitempty"`
}

type NewDispatch struct {
	BrokerID   openapi_types.UUID `json:"brokerId"`
	Containers []string           `json:"containers"`
	Tasks      []PlannedTask      `json:"tasks"`
}

type NewTask struct {
	Priority int `json:"priority"`
	PlannedTask
}

type Task struct {
	Priority    int                 `json:"priority"`
	Instruction string              `json:"instruction"`
	LocationID  *openapi_types.UUID `json:"locationId,omitempty"`
	Container   *string             `json:"container,omitempty"`
	Appointment *Appointment        `json:"appointment,omitempty"`
	Status      string              `json:"status"`
	CompletedBy *openapi_types.UUID `json:"completedBy,omitempty"`
	CheckInAt   *time.Time          `json:"checkInAt,omitempty"`
	CheckOutAt  *time.Time          `json:"checkOutAt,omitempty"`
}

type Dispatch struct {
	ID         openapi_types.UUID  `json:"id"`
	BrokerID   openapi_types.UUID  `json:"brokerId"`
	DriverID   *openapi_types.UUID `json:"driverId,omitempty"`
	Status     string              `json:"status"`
	Containers []string            `json:"containers"`
	Tasks      []Task              `json:"tasks"`
}

type DriverAssignment struct {
	DriverID openapi_types.UUID `json:"driverId"`
}

type DispatchTransition struct {
	Action   string              `json:"action"`
	DriverID *openapi_types.UUID `json:"driverId,omitempty"`
}

// Action bodies of task transitions, driver availability and reference status changes.
type Action struct {
	Action string `json:"action"`
}

type ContainerAssignment struct {
	Priorities []int `json:"priorities"`
}

type NewDriver struct {
	Name string `json:"name"`
}

type Driver struct {
	ID   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

type NewReference struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}
