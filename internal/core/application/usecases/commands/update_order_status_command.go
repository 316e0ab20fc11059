package commands

import (
	"errors"
	"strings"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to a new status. Shippers drive the
// forward progression of their own orders; admins may set any status.
type UpdateOrderStatusCommand struct {
	actor      kernel.Actor
	orderID    int64
	status     order.Status
	notes      string
	proofImage string

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	actor kernel.Actor,
	orderID int64,
	status, notes, proofImage string,
) (UpdateOrderStatusCommand, error) {
	var problems []error
	if orderID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError("order id"))
	}

	parsed, err := order.ParseStatus(strings.TrimSpace(status))
	if err != nil {
		problems = append(problems, err)
	}
	if err = order.ValidateNotes(notes); err != nil {
		problems = append(problems, err)
	}
	if err = errors.Join(problems...); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		actor:      actor,
		orderID:    orderID,
		status:     parsed,
		notes:      notes,
		proofImage: strings.TrimSpace(proofImage),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

// ProofImage returns the optional proof image reference sent with the step.
func (c UpdateOrderStatusCommand) ProofImage() string {
	return c.proofImage
}
