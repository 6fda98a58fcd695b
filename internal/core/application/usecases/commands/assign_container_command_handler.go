package commands

import (
	"context"
)

type AssignContainerCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewAssignContainerCommandHandler(uowFactory DispatchUoWFactory) AssignContainerCommandHandler {
	return AssignContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle assigns the container to every requested task or to none of them.
func (h AssignContainerCommandHandler) Handle(ctx context.Context, command AssignContainerCommand) error {
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

	repo := uow.DispatchRepository()

	d, err := repo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	if err = d.AssignContainer(command.Container(), command.Priorities()...); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
