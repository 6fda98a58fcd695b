package commands

import (
	"context"

	"drayage/internal/core/domain/model/dispatch"
	"drayage/internal/pkg/errs"
)

// ChangeTaskStatusCommandHandler delegates task progress to the dispatch.
// Completion and stop-off are recorded against the dispatch's driver.
type ChangeTaskStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewChangeTaskStatusCommandHandler(uowFactory DispatchUoWFactory) ChangeTaskStatusCommandHandler {
	return ChangeTaskStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeTaskStatusCommandHandler) Handle(ctx context.Context, command ChangeTaskStatusCommand) error {
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

	if err = applyTaskAction(d, command.Priority(), command.Action()); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyTaskAction(d *dispatch.Dispatch, priority int, action TaskAction) error {
	switch action {
	case StartTask:
		return d.StartTask(priority)
	case CompleteTask:
		return d.CompleteTask(priority)
	case StopOffTask:
		return d.MarkStopOff(priority)
	case RevertTask:
		return d.RevertTask(priority)
	default:
		return errs.NewValueIsInvalidError("action")
	}
}
