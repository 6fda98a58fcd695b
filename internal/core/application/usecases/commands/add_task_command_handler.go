package commands

import (
	"context"
)

// AddTaskCommandHandler inserts a task into a dispatch plan.
// A task location must exist and be active.
type AddTaskCommandHandler struct {
	uowFactory PlanUoWFactory
}

func NewAddTaskCommandHandler(uowFactory PlanUoWFactory) AddTaskCommandHandler {
	return AddTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddTaskCommandHandler) Handle(ctx context.Context, command AddTaskCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	task, err := command.newTask()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if ref := task.Location(); ref != nil {
		if err = ensureLocationCanBePlanned(ctx, uow.LocationRepository(), *ref); err != nil {
			return err
		}
	}

	repo := uow.DispatchRepository()

	d, err := repo.Get(ctx, command.DispatchID())
	if err != nil {
		return err
	}

	if err = d.AddTask(task); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
