package queries

import (
	"context"

	"drayage/internal/core/domain/model/dispatch"

	"gorm.io/gorm"
)

type GetDispatchStatusCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetDispatchStatusCountsQueryHandler(db *gorm.DB) GetDispatchStatusCountsQueryHandler {
	return GetDispatchStatusCountsQueryHandler{db: db}
}

func (h GetDispatchStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchStatusCountsQuery,
) (GetDispatchStatusCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(GetDispatchStatusCountsQueryResponse, len(dispatch.Statuses()))
	for _, status := range dispatch.Statuses() {
		counts[status.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM dispatches
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[dispatch.Status(status).String()] += count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
