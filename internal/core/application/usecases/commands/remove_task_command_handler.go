package commands

import (
	"context"
)

type RemoveTaskCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewRemoveTaskCommandHandler(uowFactory DispatchUoWFactory) RemoveTaskCommandHandler {
	return RemoveTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the task and lets the dispatch renumber the rest of the plan.
func (h RemoveTaskCommandHandler) Handle(ctx context.Context, command RemoveTaskCommand) error {
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

	if err = d.RemoveTask(command.Priority()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
