package commands

import (
	"context"

	"drayage/internal/core/domain/model/broker"
)

type CreateBrokerCommandHandler struct {
	uowFactory BrokerUoWFactory
}

func NewCreateBrokerCommandHandler(uowFactory BrokerUoWFactory) CreateBrokerCommandHandler {
	return CreateBrokerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateBrokerCommandHandler) Handle(ctx context.Context, command CreateBrokerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	b, err := broker.NewBroker(command.BrokerID(), command.Name(), command.Address())
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

	if err = uow.BrokerRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
