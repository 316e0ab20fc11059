package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/queries"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/generated/servers"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.NewOrder
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	pickup, pickupErr := newStop(req.PickupAddress, req.PickupLat, req.PickupLng)
	delivery, deliveryErr := newStop(req.DeliveryAddress, req.DeliveryLat, req.DeliveryLng)
	weight, weightErr := order.ParseWeight(req.Weight.String())
	if err := errors.Join(pickupErr, deliveryErr, weightErr); err != nil {
		return err
	}

	var customerID int64
	if req.CustomerId != nil {
		customerID = *req.CustomerId
	}
	cmd, err := commands.NewCreateOrderCommand(
		actor, customerID, pickup, delivery, req.DistanceKm,
		deref(req.Category), weight, deref(req.Notes),
	)
	if err != nil {
		return err
	}

	result, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Id:       result.OrderID,
		Category: result.Category.String(),
		Weight:   result.WeightKg,
		Pricing:  toPricing(result.Pricing),
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}
	query, err := queries.NewListOrdersQuery(actor, status)
	if err != nil {
		return err
	}

	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toOrder))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	views, err := s.h.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery(actor))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toOrder))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(view))
}

// GetOrderHistory handles GET /api/v1/orders/{id}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderHistoryQuery(actor, id)
	if err != nil {
		return err
	}

	entries, err := s.h.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(entries, toHistoryEntry))
}

// AcceptOrder handles PUT /api/v1/orders/{id}/accept. Every rejection other
// than a missing order, including losing a race, is a 400.
func (s *Server) AcceptOrder(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAcceptOrderCommand(actor, id)
	if err != nil {
		return err
	}

	if err := s.h.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return conflictAsBadRequest(err)
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "Order accepted"})
}

// AssignOrder handles PUT /api/v1/orders/{id}/assign.
func (s *Server) AssignOrder(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.AssignOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewAssignOrderCommand(actor, id, req.ShipperId)
	if err != nil {
		return err
	}

	if err := s.h.AssignOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return conflictAsBadRequest(err)
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "Order assigned"})
}

// UpdateOrderStatus handles PUT /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewUpdateOrderStatusCommand(actor, id, req.Status, deref(req.Notes), deref(req.PhotoUrl))
	if err != nil {
		return err
	}

	if err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "Order status updated"})
}

// CancelOrder handles PUT /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(actor, id, req.CancelReason)
	if err != nil {
		return err
	}

	if err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "Order returned to the pool"})
}

// AttachProof handles PUT /api/v1/orders/{id}/proof.
func (s *Server) AttachProof(ctx echo.Context, id int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.ProofRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewAttachProofCommand(actor, id, req.ProofImage)
	if err != nil {
		return err
	}

	if err := s.h.AttachProof.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Message{Message: "Proof attached"})
}

// GetDashboard handles GET /api/v1/stats/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	d, err := s.h.GetDashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery(actor))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toDashboard(d))
}

func newStop(address string, lat, lng float64) (order.Stop, error) {
	loc, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return order.Stop{}, err
	}
	return order.NewStop(address, loc)
}
