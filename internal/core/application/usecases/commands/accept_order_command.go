package commands

import (
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a shipper taking a pending order for themselves.
type AcceptOrderCommand struct {
	actor   kernel.Actor
	orderID int64

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(actor kernel.Actor, orderID int64) (AcceptOrderCommand, error) {
	if orderID <= 0 {
		return AcceptOrderCommand{}, errs.NewValueIsInvalidError("order id")
	}

	return AcceptOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}
