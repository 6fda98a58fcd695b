package queries

import (
	"errors"

	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
		"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
	)
)

// GetAvailableDriversQuery lists the drivers that can start a dispatch right now.
//
// Example:
//
//	handler := NewGetAvailableDriversQueryHandler(db)
//	drivers, err := handler.Handle(ctx, NewGetAvailableDriversQuery())
//	if err != nil {
//	    return err
//	}
//	for _, d := range drivers {
//	    fmt.Println(d.ID, d.Name)
//	}
type GetAvailableDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableDriversQuery() GetAvailableDriversQuery {
	return GetAvailableDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

type GetAvailableDriversQueryResponse struct {
	ID   kernel.UUID
	Name string
}
