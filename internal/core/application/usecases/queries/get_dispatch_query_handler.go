package queries

import (
	"context"
	"time"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDispatchQueryHandler reads a dispatch straight from the dispatch tables
// without restoring the aggregate.
type GetDispatchQueryHandler struct {
	db *gorm.DB
}

func NewGetDispatchQueryHandler(db *gorm.DB) GetDispatchQueryHandler {
	return GetDispatchQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the dispatch does not exist.
func (h GetDispatchQueryHandler) Handle(ctx context.Context, query GetDispatchQuery) (GetDispatchQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDispatchQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.DispatchID()

	var header struct {
		BrokerID uuid.UUID
		DriverID uuid.NullUUID
		Status   int
	}
	result := db.Raw(`
		SELECT broker_id, driver_id, status
		FROM dispatches
		WHERE id = ?
	`, id.Bytes()).Scan(&header)
	if result.Error != nil {
		return GetDispatchQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetDispatchQueryResponse{}, errs.NewObjectNotFoundError("dispatch", id.String())
	}

	brokerID, err := kernel.UUIDFromBytes(header.BrokerID[:])
	if err != nil {
		return GetDispatchQueryResponse{}, err
	}
	driverID, err := nullRef(header.DriverID)
	if err != nil {
		return GetDispatchQueryResponse{}, err
	}

	var containers []string
	if err = db.Raw(`
		SELECT number
		FROM dispatch_containers
		WHERE dispatch_id = ?
		ORDER BY position
	`, id.Bytes()).Scan(&containers).Error; err != nil {
		return GetDispatchQueryResponse{}, err
	}

	tasks, err := h.tasks(db, id)
	if err != nil {
		return GetDispatchQueryResponse{}, err
	}

	return GetDispatchQueryResponse{
		ID:         id,
		BrokerID:   brokerID,
		DriverID:   driverID,
		Status:     dispatch.Status(header.Status).String(),
		Containers: containers,
		Tasks:      tasks,
	}, nil
}

func (h GetDispatchQueryHandler) tasks(db *gorm.DB, id kernel.UUID) ([]GetDispatchTaskResponse, error) {
	rows, err := db.Raw(`
		SELECT
			priority,
			instruction,
			location_id,
			container,
			appointment_type,
			appointment_start,
			appointment_end,
			status,
			completed_by,
			check_in_at,
			check_out_at
		FROM dispatch_tasks
		WHERE dispatch_id = ?
		ORDER BY priority
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]GetDispatchTaskResponse, 0)
	for rows.Next() {
		var (
			task                    GetDispatchTaskResponse
			instruction, status     int
			appointmentType         int
			locationID, completedBy uuid.NullUUID
		)

		err = rows.Scan(
			&task.Priority,
			&instruction,
			&locationID,
			&task.Container,
			&appointmentType,
			&task.AppointmentStart,
			&task.AppointmentEnd,
			&status,
			&completedBy,
			&task.CheckInAt,
			&task.CheckOutAt,
		)
		if err != nil {
			return nil, err
		}

		task.Instruction = dispatch.Instruction(instruction).String()
		task.Status = dispatch.TaskStatus(status).String()
		if appointmentType != int(dispatch.UnknownAppointmentType) {
			name := dispatch.AppointmentType(appointmentType).String()
			task.AppointmentType = &name
		}

		if task.LocationID, err = nullRef(locationID); err != nil {
			return nil, err
		}
		if task.CompletedBy, err = nullRef(completedBy); err != nil {
			return nil, err
		}
		task.AppointmentStart = utc(task.AppointmentStart)
		task.AppointmentEnd = utc(task.AppointmentEnd)
		task.CheckInAt = utc(task.CheckInAt)
		task.CheckOutAt = utc(task.CheckOutAt)

		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func nullRef(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	ref, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
