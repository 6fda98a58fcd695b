package queries

import (
	"errors"

	"drayage/internal/pkg/guard"
)

var (
	ErrGetDispatchStatusCountsQueryIsNotConstructed = errors.New(
		"GetDispatchStatusCountsQuery must be created via NewGetDispatchStatusCountsQuery constructor",
	)
)

// GetDispatchStatusCountsQuery counts dispatches per lifecycle status.
type GetDispatchStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDispatchStatusCountsQuery() GetDispatchStatusCountsQuery {
	return GetDispatchStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchStatusCountsQueryIsNotConstructed)
}

// GetDispatchStatusCountsQueryResponse maps every status name to its dispatch count.
// Statuses without dispatches are present with zero.
type GetDispatchStatusCountsQueryResponse map[string]int
