package commands

import (
	"context"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

// CancelOrderCommandHandler releases an assigned order back to pending and
// records a cancelled_by_shipper history entry tagged with the shipper.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := services.Authorize(cmd.Actor(), services.ActionReleaseOrder); err != nil {
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

	shipperID := cmd.Actor().ID
	now := h.clock.Now()
	if err = o.Release(shipperID, now); err != nil {
		return err
	}

	if err = orders.Update(ctx, o, order.Assigned); err != nil {
		return err
	}

	entry, err := order.NewHistoryEntry(o.ID(), order.HistoryCancelledByShipper, &shipperID,
		"[shipper cancelled]: "+cmd.Reason(), now)
	if err != nil {
		return err
	}
	if err = orders.AppendHistory(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
