package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	db *sqlx.DB
}

func NewGetOrderQueryHandler(db *sqlx.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order if the actor may see it. Customers only see their
// own orders; shippers their own and pending ones.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var view OrderView
	err := h.db.GetContext(ctx, &view, h.db.Rebind("SELECT "+orderColumns+orderFrom+" WHERE o.id = ?"), query.OrderID())
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderView{}, errs.NewInfrastructureError("get order", err)
	}

	access := orderAccess{CustomerID: view.CustomerID, ShipperID: view.ShipperID, Status: view.Status}
	if err = ensureCanView(query.Actor(), access); err != nil {
		return OrderView{}, err
	}
	return view, nil
}
