package commands

import (
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand is an admin assigning an order to an explicit shipper.
type AssignOrderCommand struct {
	actor     kernel.Actor
	orderID   int64
	shipperID int64

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(actor kernel.Actor, orderID, shipperID int64) (AssignOrderCommand, error) {
	var errsList []error
	if orderID <= 0 {
		errsList = append(errsList, errs.NewValueIsInvalidError("order id"))
	}
	if shipperID <= 0 {
		errsList = append(errsList, errs.NewValueIsRequiredError("shipper_id"))
	}
	if err := errors.Join(errsList...); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		actor:     actor,
		orderID:   orderID,
		shipperID: shipperID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AssignOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c AssignOrderCommand) ShipperID() int64 {
	return c.shipperID
}
