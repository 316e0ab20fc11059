package commands

import (
	"context"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

type UpdateOnlineStatusCommandHandler struct {
	uowFactory UserUoWFactory
	clock      ports.Clock
}

func NewUpdateOnlineStatusCommandHandler(uowFactory UserUoWFactory, clock ports.Clock) UpdateOnlineStatusCommandHandler {
	return UpdateOnlineStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores the flag together with last_online and returns the updated user.
func (h UpdateOnlineStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOnlineStatusCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.Get(ctx, cmd.Actor().ID)
	if err != nil {
		return nil, err
	}

	u.SetOnline(cmd.IsOnline(), h.clock.Now())
	if err = users.Update(ctx, u); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
