package commands

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// CreateOrderResult is what the caller learns about a freshly created order.
type CreateOrderResult struct {
	OrderID  int64
	Category order.Category
	WeightKg float64
	Pricing  order.Pricing
}

// CreateOrderCommandHandler prices and persists new orders in pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingEngine
	clock      ports.Clock
	logger     *logrus.Entry
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingEngine,
	clock ports.Clock,
	logger *logrus.Entry,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		clock:      clock,
		logger:     logger,
	}
}

// Handle checks the actor may create an order for the customer, computes the
// fare and stores the order. Customers may only create orders for themselves.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}
	if err := services.Authorize(cmd.Actor(), services.ActionCreateOrder); err != nil {
		return CreateOrderResult{}, err
	}
	if cmd.Actor().IsCustomer() && cmd.CustomerID() != cmd.Actor().ID {
		return CreateOrderResult{}, errs.NewPermissionDeniedError(
			string(services.ActionCreateOrder), "customers can only order for themselves")
	}

	if !cmd.categoryRecognized && cmd.rawCategory != "" {
		h.logger.WithField("category", cmd.rawCategory).Info("unknown category, using regular")
	}
	h.warnOnImpossibleDistance(cmd)

	pricing := h.pricing.Compute(cmd.DistanceKm())
	o, err := order.NewOrder(
		cmd.CustomerID(),
		cmd.Pickup(),
		cmd.Delivery(),
		cmd.Category(),
		cmd.Weight(),
		pricing,
		cmd.Notes(),
		h.clock.Now(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	if err = orders.Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	entry, err := order.NewHistoryEntry(o.ID(), order.Pending.String(), nil, "order created", o.CreatedAt())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = orders.AppendHistory(ctx, entry); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:  o.ID(),
		Category: o.Category(),
		WeightKg: o.Weight().Kg(),
		Pricing:  o.Pricing(),
	}, nil
}

// warnOnImpossibleDistance logs when the client distance is shorter than the
// straight line between the stops. The client value is still used.
func (h CreateOrderCommandHandler) warnOnImpossibleDistance(cmd CreateOrderCommand) {
	straight, err := cmd.Pickup().Location().StraightLineKm(cmd.Delivery().Location())
	if err != nil || cmd.DistanceKm() >= straight {
		return
	}

	h.logger.WithFields(logrus.Fields{
		"customer_id":   cmd.CustomerID(),
		"distance_km":   cmd.DistanceKm(),
		"straight_line": straight,
	}).Warn("client distance is shorter than the straight line between stops")
}
