package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

type GetOrderHistoryQueryHandler struct {
	db *sqlx.DB
}

func NewGetOrderHistoryQueryHandler(db *sqlx.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns history entries oldest first, under the same visibility
// rules as the order itself.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntryView, error) {
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

	entries := make([]HistoryEntryView, 0)
	err = h.db.SelectContext(ctx, &entries, h.db.Rebind(`
		SELECT id, order_id, status, shipper_id, note, created_at
		FROM order_history
		WHERE order_id = ?
		ORDER BY created_at, id`), query.OrderID())
	if err != nil {
		return nil, errs.NewInfrastructureError("select order history", err)
	}
	return entries, nil
}
