package commands

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies status changes and records history.
type UpdateOrderStatusCommandHandler struct {
	uowFactory    OrderUoWFactory
	clock         ports.Clock
	proofRequired bool
	logger        *logrus.Entry
}

// NewUpdateOrderStatusCommandHandler creates the handler. proofRequired makes
// a proof image mandatory when a shipper marks an order delivered.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
	proofRequired bool,
	logger *logrus.Entry,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		clock:         clock,
		proofRequired: proofRequired,
		logger:        logger,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	actor := cmd.Actor()
	if err := services.Authorize(actor, services.ActionUpdateOrderStatus); err != nil {
		return err
	}
	if cmd.Status() == order.Cancelled && !actor.IsAdmin() {
		return errs.NewPermissionDeniedError(string(services.ActionUpdateOrderStatus), "only admins can cancel orders")
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

	observed := o.Status()
	now := h.clock.Now()
	if actor.IsAdmin() {
		err = o.Override(cmd.Status(), now)
	} else {
		err = o.Advance(actor.ID, cmd.Status(), cmd.ProofImage(), h.proofRequired, now)
	}
	if err != nil {
		return err
	}

	if err = orders.Update(ctx, o, observed); err != nil {
		return err
	}

	entry, err := order.NewHistoryEntry(o.ID(), o.Status().String(), o.Shipper(), cmd.Notes(), now)
	if err != nil {
		return err
	}
	if err = orders.AppendHistory(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if actor.IsAdmin() {
		h.logger.WithFields(logrus.Fields{
			"admin_id": actor.ID,
			"order_id": o.ID(),
			"from":     observed,
			"to":       o.Status(),
		}).Info("admin set order status")
	}
	return nil
}
