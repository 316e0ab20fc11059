package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// ListOrdersQueryHandler returns role-scoped order lists:
//   - customer: own orders
//   - admin: all orders
//   - online shipper: the pending pool plus own orders
//   - offline shipper: own active orders only
//
// The shipper's online flag is read from storage on every call.
type ListOrdersQueryHandler struct {
	db *sqlx.DB
}

func NewListOrdersQueryHandler(db *sqlx.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args, err := h.scope(ctx, query.Actor())
	if err != nil {
		return nil, err
	}
	if where == nil {
		return []OrderView{}, nil
	}
	if query.Status() != nil {
		where = append(where, "o.status = ?")
		args = append(args, query.Status().String())
	}

	stmt := "SELECT " + orderColumns + orderFrom
	if len(where) > 0 {
		stmt += " WHERE " + strings.Join(where, " AND ")
	}
	stmt += " ORDER BY o.created_at DESC, o.id DESC"

	stmt, args, err = sqlx.In(stmt, args...)
	if err != nil {
		return nil, errs.NewInfrastructureError("build orders query", err)
	}

	views := make([]OrderView, 0)
	if err = h.db.SelectContext(ctx, &views, h.db.Rebind(stmt), args...); err != nil {
		return nil, errs.NewInfrastructureError("select orders", err)
	}
	return views, nil
}

// scope returns the WHERE clauses for the actor. A nil slice with no error
// means the actor can see nothing.
func (h ListOrdersQueryHandler) scope(ctx context.Context, actor kernel.Actor) ([]string, []any, error) {
	switch {
	case actor.IsAdmin():
		return []string{}, nil, nil
	case actor.IsCustomer():
		return []string{"o.customer_id = ?"}, []any{actor.ID}, nil
	case actor.IsShipper():
		var online bool
		err := h.db.GetContext(ctx, &online,
			h.db.Rebind("SELECT is_online FROM users WHERE id = ? AND role = ?"),
			actor.ID, kernel.RoleShipper.String())
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil
		}
		if err != nil {
			return nil, nil, errs.NewInfrastructureError("get shipper online status", err)
		}

		if online {
			return []string{"(o.status = ? OR o.shipper_id = ?)"}, []any{order.Pending.String(), actor.ID}, nil
		}
		return []string{"o.shipper_id = ?", "o.status IN (?)"}, []any{actor.ID, activeStatusNames()}, nil
	}
	return nil, nil, nil
}
