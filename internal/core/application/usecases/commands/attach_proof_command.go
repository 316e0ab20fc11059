package commands

import (
	"errors"
	"strings"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrAttachProofCommandIsNotConstructed = errors.New(
	"AttachProofCommand must be created via NewAttachProofCommand constructor",
)

// AttachProofCommand stores a delivery proof image reference on an order.
type AttachProofCommand struct {
	actor   kernel.Actor
	orderID int64
	image   string

	guard guard.ConstructorGuard
}

func NewAttachProofCommand(actor kernel.Actor, orderID int64, image string) (AttachProofCommand, error) {
	var problems []error
	if orderID <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError("order id"))
	}
	image = strings.TrimSpace(image)
	if image == "" {
		problems = append(problems, errs.NewValueIsRequiredError("proof_image"))
	}
	if err := errors.Join(problems...); err != nil {
		return AttachProofCommand{}, err
	}

	return AttachProofCommand{
		actor:   actor,
		orderID: orderID,
		image:   image,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AttachProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachProofCommandIsNotConstructed)
}

func (c AttachProofCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AttachProofCommand) OrderID() int64 {
	return c.orderID
}

func (c AttachProofCommand) Image() string {
	return c.image
}
