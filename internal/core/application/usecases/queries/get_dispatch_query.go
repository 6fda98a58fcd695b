package queries

import (
	"errors"
	"time"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrGetDispatchQueryIsNotConstructed = errors.New(
		"GetDispatchQuery must be created via NewGetDispatchQuery constructor",
	)
)

// GetDispatchQuery reads one dispatch with its containers and its plan.
//
// Example:
//
//	query, err := NewGetDispatchQuery(dispatchID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	for _, task := range view.Tasks {
//	    fmt.Printf("%d %s %s\n", task.Priority, task.Instruction, task.Status)
//	}
type GetDispatchQuery struct {
	dispatchID kernel.UUID
	guard      guard.ConstructorGuard
}

// NewGetDispatchQuery validates the dispatch identifier.
func NewGetDispatchQuery(dispatchID kernel.UUID) (GetDispatchQuery, error) {
	if err := dispatchID.Validate(); err != nil {
		return GetDispatchQuery{}, err
	}
	return GetDispatchQuery{
		dispatchID: dispatchID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDispatchQuery) DispatchID() kernel.UUID {
	return q.dispatchID
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchQueryIsNotConstructed)
}

// GetDispatchQueryResponse is the read model of a dispatch. Enum values are rendered
// with their upper-snake names.
type GetDispatchQueryResponse struct {
	ID         kernel.UUID
	BrokerID   kernel.UUID
	DriverID   *kernel.UUID
	Status     string
	Containers []string
	Tasks      []GetDispatchTaskResponse
}

// GetDispatchTaskResponse is one plan step, listed in priority order.
type GetDispatchTaskResponse struct {
	Priority         int
	Instruction      string
	LocationID       *kernel.UUID
	Container        *string
	AppointmentType  *string
	AppointmentStart *time.Time
	AppointmentEnd   *time.Time
	Status           string
	CompletedBy      *kernel.UUID
	CheckInAt        *time.Time
	CheckOutAt       *time.Time
}
