package commands

import (
	"context"

	"drayage/internal/core/domain/model/location"
)

type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateLocationCommandHandler) Handle(ctx context.Context, command CreateLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	l, err := location.NewLocation(command.LocationID(), command.Name(), command.Address())
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

	if err = uow.LocationRepository().Add(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
