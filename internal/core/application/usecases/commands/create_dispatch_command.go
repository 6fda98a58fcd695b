package commands

import (
	"errors"
	"fmt"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
)

var (
	ErrCreateDispatchCommandIsNotConstructed = errors.New(
		"CreateDispatchCommand must be created via NewCreateDispatchCommand constructor",
	)
	ErrPlanIsRequired = errors.New("plan is required")
)

// PlannedTask is one task of a plan as requested by a caller.
type PlannedTask struct {
	Instruction dispatch.Instruction
	LocationID  *kernel.UUID
	Container   *dispatch.Container
	Appointment *dispatch.Appointment
}

// CreateDispatchCommand represents a request to book a new dispatch for a broker.
//
// Example:
//
//	cmd, err := NewCreateDispatchCommand(brokerID, []string{"CMAU1234567"}, []PlannedTask{
//	    {Instruction: dispatch.PickupEmpty, LocationID: &terminalID},
//	    {Instruction: dispatch.LiveLoad, LocationID: &shipperID, Appointment: &window},
//	    {Instruction: dispatch.Ingate, LocationID: &terminalID},
//	})
type CreateDispatchCommand struct { //nolint:recvcheck //using for validation
	dispatchID kernel.UUID
	brokerID   kernel.UUID
	containers []dispatch.Container
	plan       []PlannedTask

	guard guard.ConstructorGuard
}

// NewCreateDispatchCommand generates the dispatch ID, validates the broker ID and parses
// the container numbers. Plan rules (lengths, container bounds) are checked by the dispatch aggregate.
func NewCreateDispatchCommand(
	brokerID kernel.UUID,
	containers []string,
	plan []PlannedTask,
) (CreateDispatchCommand, error) {
	cmd := CreateDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDispatchID(kernel.NewUUID()),
		cmd.setBrokerID(brokerID),
		cmd.setContainers(containers),
		cmd.setPlan(plan),
	); err != nil {
		return CreateDispatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDispatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateDispatchCommandIsNotConstructed)
}

// DispatchID returns the identifier the new dispatch will get.
func (c CreateDispatchCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

func (c CreateDispatchCommand) BrokerID() kernel.UUID {
	return c.brokerID
}

func (c CreateDispatchCommand) Containers() []dispatch.Container {
	return append([]dispatch.Container(nil), c.containers...)
}

func (c CreateDispatchCommand) Plan() []PlannedTask {
	return append([]PlannedTask(nil), c.plan...)
}

func (c *CreateDispatchCommand) setDispatchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dispatchID = id
	return nil
}

func (c *CreateDispatchCommand) setBrokerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.brokerID = id
	return nil
}

func (c *CreateDispatchCommand) setContainers(numbers []string) error {
	containers := make([]dispatch.Container, 0, len(numbers))
	for _, number := range numbers {
		container, err := dispatch.NewContainer(number)
		if err != nil {
			return err
		}
		containers = append(containers, container)
	}
	c.containers = containers
	return nil
}

func (c *CreateDispatchCommand) setPlan(plan []PlannedTask) error {
	if len(plan) == 0 {
		return ErrPlanIsRequired
	}
	for i, task := range plan {
		if err := task.Instruction.Validate(); err != nil {
			return fmt.Errorf("task %d: %w", i+1, err)
		}
	}
	c.plan = append([]PlannedTask(nil), plan...)
	return nil
}
