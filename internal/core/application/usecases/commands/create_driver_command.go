package commands

import (
	"drayage/internal/core/domain/model/kernel"
	"drayage/internal/pkg/guard"
	"errors"
	"strings"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateDriverCommand represents a request to register a new driver.
// The driver starts AVAILABLE.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand("Maria Lopez")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create driver: %w", err)
//	}
//	fmt.Printf("Created driver with ID: %s", cmd.DriverID())
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand generates a unique ID for the driver and validates the name.
func NewCreateDriverCommand(name string) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		driverID: kernel.NewUUID(),
		guard:    guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier the new driver will get.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c CreateDriverCommand) Name() string {
	return c.name
}

func (c *CreateDriverCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
