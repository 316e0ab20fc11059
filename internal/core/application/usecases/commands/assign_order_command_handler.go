package commands

import (
	"context"
	"fmt"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

// AssignOrderCommandHandler performs admin assignment and reassignment.
// The target must be an online shipper; the write is conditioned on the
// status the admin's request observed.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
	clock      ports.Clock
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewOrderDispatcher(),
		clock:      clock,
	}
}

func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := services.Authorize(cmd.Actor(), services.ActionAssignOrder); err != nil {
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

	target, err := uow.UserRepository().Get(ctx, cmd.ShipperID())
	if err != nil {
		return err
	}

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	observed := o.Status()
	now := h.clock.Now()
	if err = h.dispatcher.Reassign(o, target, now); err != nil {
		return err
	}

	if err = orders.Update(ctx, o, observed); err != nil {
		return translateAssignConflict(err)
	}

	note := fmt.Sprintf("assigned by admin #%d", cmd.Actor().ID)
	entry, err := order.NewHistoryEntry(o.ID(), order.Assigned.String(), o.Shipper(), note, now)
	if err != nil {
		return err
	}
	if err = orders.AppendHistory(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
