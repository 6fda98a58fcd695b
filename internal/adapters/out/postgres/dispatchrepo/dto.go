// Package dispatchrepo persists dispatch aggregates: one header row, its container
// rows and its task rows. Tasks and containers are rewritten with the header.
package dispatchrepo

import (
	"time"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DispatchDTO is the header row of a dispatch.
type DispatchDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	BrokerID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	DriverID   *uuid.UUID     `gorm:"type:uuid;index"`
	Status     int            `gorm:"type:smallint;not null;index"`
	Containers []ContainerDTO `gorm:"foreignKey:DispatchID;constraint:OnDelete:CASCADE"`
	Tasks      []TaskDTO      `gorm:"foreignKey:DispatchID;constraint:OnDelete:CASCADE"`
}

func (DispatchDTO) TableName() string {
	return "dispatches"
}

// ContainerDTO is one container carried by a dispatch. Position keeps the booking order.
type ContainerDTO struct {
	DispatchID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number     string    `gorm:"type:varchar(11);primaryKey"`
	Position   int       `gorm:"type:smallint;not null"`
}

func (ContainerDTO) TableName() string {
	return "dispatch_containers"
}

// TaskDTO is one step of a dispatch plan.
type TaskDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DispatchID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_dispatch_task_priority"`
	Priority    int            `gorm:"type:smallint;not null;uniqueIndex:idx_dispatch_task_priority"`
	Instruction int            `gorm:"type:smallint;not null"`
	LocationID  *uuid.UUID     `gorm:"type:uuid;index"`
	Container   *string        `gorm:"type:varchar(11)"`
	Appointment AppointmentDTO `gorm:"embedded;embeddedPrefix:appointment_"`
	Status      int            `gorm:"type:smallint;not null"`
	CompletedBy *uuid.UUID     `gorm:"type:uuid"`
	CheckInAt   *time.Time
	CheckOutAt  *time.Time
}

func (TaskDTO) TableName() string {
	return "dispatch_tasks"
}

// AppointmentDTO is embedded in the task row. Type 0 means the task has no appointment.
type AppointmentDTO struct {
	Type  int `gorm:"type:smallint;not null;default:0"`
	Start *time.Time
	End   *time.Time
}

func fromDomain(d *dispatch.Dispatch) DispatchDTO {
	dispatchID := d.ID().Bytes()

	containers := make([]ContainerDTO, 0, len(d.Containers()))
	for i, c := range d.Containers() {
		containers = append(containers, ContainerDTO{
			DispatchID: dispatchID,
			Number:     c.Number(),
			Position:   i,
		})
	}

	tasks := make([]TaskDTO, 0, d.TaskCount())
	for _, t := range d.Tasks() {
		tasks = append(tasks, taskFromDomain(dispatchID, t))
	}

	return DispatchDTO{
		ID:         dispatchID,
		BrokerID:   d.BrokerRef().Bytes(),
		DriverID:   refToBytes(d.DriverRef()),
		Status:     int(d.Status()),
		Containers: containers,
		Tasks:      tasks,
	}
}

func taskFromDomain(dispatchID uuid.UUID, t *dispatch.Task) TaskDTO {
	dto := TaskDTO{
		ID:          t.ID().Bytes(),
		DispatchID:  dispatchID,
		Priority:    t.Priority(),
		Instruction: int(t.Instruction()),
		LocationID:  refToBytes(t.Location()),
		Status:      int(t.Status()),
		CompletedBy: refToBytes(t.CompletedBy()),
		CheckInAt:   t.CheckInAt(),
		CheckOutAt:  t.CheckOutAt(),
	}

	if c := t.Container(); c != nil {
		number := c.Number()
		dto.Container = &number
	}

	if a := t.Appointment(); a != nil {
		dto.Appointment = AppointmentDTO{
			Type:  int(a.Type()),
			Start: a.Start(),
			End:   a.End(),
		}
	}

	return dto
}

func toDomain(dto DispatchDTO) (*dispatch.Dispatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	brokerRef, err := kernel.UUIDFromBytes(dto.BrokerID[:])
	if err != nil {
		return nil, err
	}

	driverRef, err := bytesToRef(dto.DriverID)
	if err != nil {
		return nil, err
	}

	containers := make([]dispatch.Container, 0, len(dto.Containers))
	for _, c := range dto.Containers {
		container, cErr := dispatch.NewContainer(c.Number)
		if cErr != nil {
			return nil, cErr
		}
		containers = append(containers, container)
	}

	plan := make([]*dispatch.Task, 0, len(dto.Tasks))
	for _, t := range dto.Tasks {
		task, tErr := taskToDomain(t)
		if tErr != nil {
			return nil, tErr
		}
		plan = append(plan, task)
	}

	return dispatch.RestoreDispatch(id, brokerRef, driverRef, dispatch.Status(dto.Status), containers, plan)
}

func taskToDomain(dto TaskDTO) (*dispatch.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := bytesToRef(dto.LocationID)
	if err != nil {
		return nil, err
	}

	completedBy, err := bytesToRef(dto.CompletedBy)
	if err != nil {
		return nil, err
	}

	var container *dispatch.Container
	if dto.Container != nil {
		c, cErr := dispatch.NewContainer(*dto.Container)
		if cErr != nil {
			return nil, cErr
		}
		container = &c
	}

	var appointment *dispatch.Appointment
	if dto.Appointment.Type != int(dispatch.UnknownAppointmentType) {
		a, aErr := dispatch.NewAppointment(
			dispatch.AppointmentType(dto.Appointment.Type),
			dto.Appointment.Start,
			dto.Appointment.End,
		)
		if aErr != nil {
			return nil, aErr
		}
		appointment = &a
	}

	return dispatch.RestoreTask(
		id,
		dto.Priority,
		dispatch.Instruction(dto.Instruction),
		location,
		container,
		appointment,
		dispatch.TaskStatus(dto.Status),
		completedBy,
		dto.CheckInAt,
		dto.CheckOutAt,
	)
}

func refToBytes(ref *kernel.UUID) *uuid.UUID {
	if ref == nil {
		return nil
	}
	raw := ref.Bytes()
	return &raw
}

func bytesToRef(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // a missing reference is not an error
	}
	ref, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
