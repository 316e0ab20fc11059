package commands

import (
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrUpdateOnlineStatusCommandIsNotConstructed = errors.New(
	"UpdateOnlineStatusCommand must be created via NewUpdateOnlineStatusCommand constructor",
)

type UpdateOnlineStatusCommand struct {
	actor    kernel.Actor
	isOnline bool

	guard guard.ConstructorGuard
}

func NewUpdateOnlineStatusCommand(actor kernel.Actor, isOnline bool) (UpdateOnlineStatusCommand, error) {
	if err := actor.Role.Validate(); err != nil {
		return UpdateOnlineStatusCommand{}, err
	}

	return UpdateOnlineStatusCommand{
		actor:    actor,
		isOnline: isOnline,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOnlineStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOnlineStatusCommandIsNotConstructed)
}

func (c UpdateOnlineStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateOnlineStatusCommand) IsOnline() bool {
	return c.isOnline
}
