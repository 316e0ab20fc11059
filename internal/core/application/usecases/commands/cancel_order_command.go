package commands

import (
	"errors"
	"strings"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is a shipper giving an assigned order back to the pool.
// The reason is mandatory and ends up in the order history.
type CancelOrderCommand struct {
	actor   kernel.Actor
	orderID int64
	reason  string

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(actor kernel.Actor, orderID int64, reason string) (CancelOrderCommand, error) {
	var problems []error
	if orderID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError("order id"))
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		problems = append(problems, errs.NewValueIsRequiredError("cancel_reason"))
	}
	if err := errors.Join(problems...); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		actor:   actor,
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c CancelOrderCommand) Reason() string {
	return c.reason
}
