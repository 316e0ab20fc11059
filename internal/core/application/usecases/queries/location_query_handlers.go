package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

const locationColumns = "id, shipper_id, latitude, longitude, accuracy_m, order_id, recorded_at"

type GetShipperLocationQueryHandler struct {
	db *sqlx.DB
}

func NewGetShipperLocationQueryHandler(db *sqlx.DB) GetShipperLocationQueryHandler {
	return GetShipperLocationQueryHandler{db: db}
}

// Handle returns the newest point, or nil when the shipper never reported one.
func (h GetShipperLocationQueryHandler) Handle(ctx context.Context, query GetShipperLocationQuery) (*LocationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var view LocationView
	err := h.db.GetContext(ctx, &view, h.db.Rebind(`
		SELECT `+locationColumns+`
		FROM shipper_locations
		WHERE shipper_id = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1`), query.ShipperID())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewInfrastructureError("get latest location", err)
	}
	return &view, nil
}

type GetOrderLocationHistoryQueryHandler struct {
	db *sqlx.DB
}

func NewGetOrderLocationHistoryQueryHandler(db *sqlx.DB) GetOrderLocationHistoryQueryHandler {
	return GetOrderLocationHistoryQueryHandler{db: db}
}

// Handle returns every point of the order's current shipper, oldest first.
// An order without a shipper has an empty track.
func (h GetOrderLocationHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLocationHistoryQuery,
) ([]LocationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var access orderAccess
	err := h.db.GetContext(ctx, &access,
		h.db.Rebind("SELECT customer_id, shipper_id, status FROM orders WHERE id = ?"), query.OrderID())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return nil, errs.NewInfrastructureError("get order", err)
	}
	if err = ensureCanView(query.Actor(), access); err != nil {
		return nil, err
	}

	points := make([]LocationView, 0)
	if access.ShipperID == nil {
		return points, nil
	}

	err = h.db.SelectContext(ctx, &points, h.db.Rebind(`
		SELECT `+locationColumns+`
		FROM shipper_locations
		WHERE shipper_id = ?
		ORDER BY recorded_at, id`), *access.ShipperID)
	if err != nil {
		return nil, errs.NewInfrastructureError("select location history", err)
	}
	return points, nil
}
