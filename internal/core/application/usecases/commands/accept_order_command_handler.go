package commands

import (
	"context"
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

// AcceptOrderCommandHandler performs shipper self-assignment.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, clock)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrShipperHasActiveOrder):
//	    // "finish current order first"
//	case errors.Is(err, services.ErrOrderAlreadyTaken):
//	    // another shipper won the race
//	}
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	gate       ShipperAvailabilityGate
	dispatcher services.OrderDispatcher
	clock      ports.Clock
}

func NewAcceptOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       NewShipperAvailabilityGate(),
		dispatcher: services.NewOrderDispatcher(),
		clock:      clock,
	}
}

// Handle checks the shipper's availability before looking at the order, so a
// busy shipper always hears "finish current order first". The write is
// conditioned on the order still being pending.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := services.Authorize(cmd.Actor(), services.ActionAcceptOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	orders := uow.OrderRepository()

	eligibility, err := h.gate.Evaluate(ctx, users, orders, cmd.Actor().ID)
	if err != nil {
		return err
	}
	if !eligibility.Eligible {
		return eligibility.Reason
	}

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = h.dispatcher.Accept(o, eligibility.Shipper, eligibility.ActiveOrders, now); err != nil {
		return err
	}

	if err = orders.Update(ctx, o, order.Pending); err != nil {
		return translateAssignConflict(err)
	}

	entry, err := order.NewHistoryEntry(o.ID(), order.Assigned.String(), o.Shipper(), "accepted by shipper", now)
	if err != nil {
		return err
	}
	if err = orders.AppendHistory(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func translateAssignConflict(err error) error {
	switch {
	case errors.Is(err, ports.ErrOrderStatusChanged):
		return services.ErrOrderAlreadyTaken
	case errors.Is(err, ports.ErrShipperAlreadyBusy):
		return services.ErrShipperHasActiveOrder
	default:
		return err
	}
}
