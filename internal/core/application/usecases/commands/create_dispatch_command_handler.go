package commands

import (
	"context"
	"drayage/internal/core/domain/model/dispatch"
)

// CreateDispatchCommandHandler books a new dispatch in draft.
//
// The broker must exist and be active; every task location must exist and be active.
type CreateDispatchCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDispatchCommandHandler creates a handler for dispatch creation.
func NewCreateDispatchCommandHandler(uowFactory UoWFactory) CreateDispatchCommandHandler {
	return CreateDispatchCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the references, builds the aggregate and persists it.
func (h CreateDispatchCommandHandler) Handle(ctx context.Context, command CreateDispatchCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, err := uow.BrokerRepository().Get(ctx, command.BrokerID())
	if err != nil {
		return err
	}
	if err = b.ValidateCanOrder(); err != nil {
		return err
	}

	locationRepo := uow.LocationRepository()
	plan := make([]*dispatch.Task, 0, len(command.Plan()))
	for i, planned := range command.Plan() {
		if planned.LocationID != nil {
			if err = ensureLocationCanBePlanned(ctx, locationRepo, *planned.LocationID); err != nil {
				return err
			}
		}

		task, err := dispatch.NewTask(i+1, planned.Instruction, planned.LocationID, planned.Container, planned.Appointment)
		if err != nil {
			return err
		}
		plan = append(plan, task)
	}

	d, err := dispatch.NewDispatch(command.DispatchID(), command.BrokerID(), command.Containers(), plan)
	if err != nil {
		return err
	}

	if err = uow.DispatchRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
