package queries

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

type GetOnlineShippersQueryHandler struct {
	db *sqlx.DB
}

func NewGetOnlineShippersQueryHandler(db *sqlx.DB) GetOnlineShippersQueryHandler {
	return GetOnlineShippersQueryHandler{db: db}
}

func (h GetOnlineShippersQueryHandler) Handle(ctx context.Context, query GetOnlineShippersQuery) ([]ShipperView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := services.Authorize(query.Actor(), services.ActionListOnlineShipper); err != nil {
		return nil, err
	}

	stmt, args, err := sqlx.In(`
		SELECT u.id, u.name, u.email, u.phone, u.last_online,
			(SELECT COUNT(*) FROM orders o WHERE o.shipper_id = u.id AND o.status IN (?)) AS active_orders
		FROM users u
		WHERE u.role = ? AND u.is_online = ?
		ORDER BY u.name, u.id`,
		activeStatusNames(), kernel.RoleShipper.String(), true,
	)
	if err != nil {
		return nil, errs.NewInfrastructureError("build online shippers query", err)
	}

	shippers := make([]ShipperView, 0)
	if err = h.db.SelectContext(ctx, &shippers, h.db.Rebind(stmt), args...); err != nil {
		return nil, errs.NewInfrastructureError("select online shippers", err)
	}
	return shippers, nil
}
