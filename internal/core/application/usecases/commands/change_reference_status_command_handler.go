package commands

import (
	"context"
)

// ChangeBrokerStatusCommandHandler toggles a broker. Existing dispatches of an
// inactive broker are not touched; it can no longer order new ones.
type ChangeBrokerStatusCommandHandler struct {
	uowFactory BrokerUoWFactory
}

func NewChangeBrokerStatusCommandHandler(uowFactory BrokerUoWFactory) ChangeBrokerStatusCommandHandler {
	return ChangeBrokerStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeBrokerStatusCommandHandler) Handle(ctx context.Context, command ChangeBrokerStatusCommand) error {
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

	repo := uow.BrokerRepository()

	b, err := repo.Get(ctx, command.BrokerID())
	if err != nil {
		return err
	}

	if command.Toggle() == Activate {
		err = b.Reactivate()
	} else {
		err = b.Deactivate()
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ChangeLocationStatusCommandHandler toggles a location. Tasks already planned
// at an inactive location keep it.
type ChangeLocationStatusCommandHandler struct {
	uowFactory LocationUoWFactory
}

func NewChangeLocationStatusCommandHandler(uowFactory LocationUoWFactory) ChangeLocationStatusCommandHandler {
	return ChangeLocationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeLocationStatusCommandHandler) Handle(ctx context.Context, command ChangeLocationStatusCommand) error {
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

	repo := uow.LocationRepository()

	l, err := repo.Get(ctx, command.LocationID())
	if err != nil {
		return err
	}

	if command.Toggle() == Activate {
		err = l.Reactivate()
	} else {
		err = l.Deactivate()
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
