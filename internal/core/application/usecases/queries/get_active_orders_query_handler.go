package queries

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

type GetActiveOrdersQueryHandler struct {
	db *sqlx.DB
}

func NewGetActiveOrdersQueryHandler(db *sqlx.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := services.Authorize(query.Actor(), services.ActionListActiveOrders); err != nil {
		return nil, err
	}

	stmt, args, err := sqlx.In(
		"SELECT "+orderColumns+orderFrom+" WHERE o.shipper_id = ? AND o.status IN (?) ORDER BY o.created_at DESC",
		query.Actor().ID, activeStatusNames(),
	)
	if err != nil {
		return nil, errs.NewInfrastructureError("build active orders query", err)
	}

	views := make([]OrderView, 0)
	if err = h.db.SelectContext(ctx, &views, h.db.Rebind(stmt), args...); err != nil {
		return nil, errs.NewInfrastructureError("select active orders", err)
	}
	return views, nil
}
