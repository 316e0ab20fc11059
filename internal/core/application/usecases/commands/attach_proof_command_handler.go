package commands

import (
	"context"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

// AttachProofCommandHandler attaches a proof image. Shippers may only touch
// their own orders; admins any order.
type AttachProofCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewAttachProofCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AttachProofCommandHandler {
	return AttachProofCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AttachProofCommandHandler) Handle(ctx context.Context, cmd AttachProofCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	actor := cmd.Actor()
	if err := services.Authorize(actor, services.ActionAttachProof); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if actor.IsShipper() {
		if err = o.EnsureAssignedTo(actor.ID, string(services.ActionAttachProof)); err != nil {
			return err
		}
	}

	if err = o.AttachProof(cmd.Image(), h.clock.Now()); err != nil {
		return err
	}

	if err = orders.Update(ctx, o, o.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
