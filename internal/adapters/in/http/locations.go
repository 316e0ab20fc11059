package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/queries"
	"github.com/FIT-dev-AI/Delivery-app/internal/generated/servers"
)

// RecordLocation handles POST /api/v1/locations/update.
func (s *Server) RecordLocation(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var req servers.LocationUpdate
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	cmd, err := commands.NewRecordLocationCommand(actor, req.Latitude, req.Longitude, req.Accuracy, req.OrderId)
	if err != nil {
		return err
	}

	if err := s.h.RecordLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.Message{Message: "Location recorded"})
}

// GetShipperLocation handles GET /api/v1/locations/shipper/{shipperId}.
// The body is null when the shipper never reported a position.
func (s *Server) GetShipperLocation(ctx echo.Context, shipperID int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetShipperLocationQuery(actor, shipperID)
	if err != nil {
		return err
	}

	view, err := s.h.GetShipperLocation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if view == nil {
		return ctx.JSON(http.StatusOK, nil)
	}
	return ctx.JSON(http.StatusOK, toLocation(*view))
}

// GetOrderLocationHistory handles GET /api/v1/locations/order/{orderId}/history.
func (s *Server) GetOrderLocationHistory(ctx echo.Context, orderID int64) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderLocationHistoryQuery(actor, orderID)
	if err != nil {
		return err
	}

	views, err := s.h.GetOrderLocationHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toLocation))
}

// GetOnlineShippers handles GET /api/v1/admin/shippers/online.
func (s *Server) GetOnlineShippers(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	views, err := s.h.GetOnlineShippers.Handle(ctx.Request().Context(), queries.NewGetOnlineShippersQuery(actor))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mapSlice(views, toShipper))
}
