package commands

import (
	"context"
	"drayage/internal/core/domain/services"
)

// RemoveDriverCommandHandler clears the driver reference of a dispatch that is not in progress.
type RemoveDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
}

func NewRemoveDriverCommandHandler(uowFactory DispatchUoWFactory) RemoveDriverCommandHandler {
	return RemoveDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveDriverCommandHandler) Handle(ctx context.Context, command RemoveDriverCommand) error {
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

	if err = services.NewDispatchCoordinator().RemoveDriver(d); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
