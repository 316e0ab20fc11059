package queries

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

type GetDashboardQueryHandler struct {
	db    *sqlx.DB
	clock ports.Clock
}

func NewGetDashboardQueryHandler(db *sqlx.DB, clock ports.Clock) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db, clock: clock}
}

type statusCounts struct {
	Total     int64 `db:"total"`
	Pending   int64 `db:"pending"`
	Assigned  int64 `db:"assigned"`
	PickedUp  int64 `db:"picked_up"`
	InTransit int64 `db:"in_transit"`
	Delivered int64 `db:"delivered"`
	Cancelled int64 `db:"cancelled"`
}

type revenue struct {
	Month     int64 `db:"month_revenue"`
	LastMonth int64 `db:"last_month_revenue"`
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}
	actor := query.Actor()

	scope, scopeArgs := orderScope(actor)

	var counts statusCounts
	err := h.db.GetContext(ctx, &counts, h.db.Rebind(`
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS assigned,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS picked_up,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_transit,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS delivered,
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS cancelled
		FROM orders`+scope),
		append([]any{
			order.Pending.String(), order.Assigned.String(), order.PickedUp.String(),
			order.InTransit.String(), order.Delivered.String(), order.Cancelled.String(),
		}, scopeArgs...)...,
	)
	if err != nil {
		return Dashboard{}, errs.NewInfrastructureError("count orders by status", err)
	}

	amount := "total_amount"
	if actor.IsShipper() {
		amount = "shipper_amount"
	}
	monthStart, nextMonthStart, lastMonthStart := monthBounds(h.clock.Now())

	var rev revenue
	err = h.db.GetContext(ctx, &rev, h.db.Rebind(`
		SELECT
			COALESCE(SUM(CASE WHEN status = ? AND created_at >= ? AND created_at < ? THEN `+amount+` ELSE 0 END), 0) AS month_revenue,
			COALESCE(SUM(CASE WHEN status = ? AND created_at >= ? AND created_at < ? THEN `+amount+` ELSE 0 END), 0) AS last_month_revenue
		FROM orders`+scope),
		append([]any{
			order.Delivered.String(), monthStart, nextMonthStart,
			order.Delivered.String(), lastMonthStart, monthStart,
		}, scopeArgs...)...,
	)
	if err != nil {
		return Dashboard{}, errs.NewInfrastructureError("sum revenue", err)
	}

	released, err := h.countReleasedByShippers(ctx, actor)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		TotalOrders:        counts.Total,
		Pending:            counts.Pending,
		Assigned:           counts.Assigned,
		PickedUp:           counts.PickedUp,
		InTransit:          counts.InTransit,
		Delivered:          counts.Delivered,
		Cancelled:          counts.Cancelled + released,
		CancelledByShipper: released,
		MonthRevenue:       rev.Month,
		LastMonthRevenue:   rev.LastMonth,
		RevenueGrowth:      revenueGrowth(rev.Month, rev.LastMonth),
	}, nil
}

// countReleasedByShippers counts cancelled_by_shipper history entries in the
// actor's scope: entries on own orders for customers, entries tagged with
// the shipper's id for shippers, all of them for admins.
func (h GetDashboardQueryHandler) countReleasedByShippers(ctx context.Context, actor kernel.Actor) (int64, error) {
	stmt := "SELECT COUNT(*) FROM order_history WHERE status = ?"
	args := []any{order.HistoryCancelledByShipper}

	switch {
	case actor.IsCustomer():
		stmt += " AND order_id IN (SELECT id FROM orders WHERE customer_id = ?)"
		args = append(args, actor.ID)
	case actor.IsShipper():
		stmt += " AND shipper_id = ?"
		args = append(args, actor.ID)
	}

	var n int64
	if err := h.db.GetContext(ctx, &n, h.db.Rebind(stmt), args...); err != nil {
		return 0, errs.NewInfrastructureError("count shipper releases", err)
	}
	return n, nil
}

func orderScope(actor kernel.Actor) (string, []any) {
	switch {
	case actor.IsCustomer():
		return " WHERE customer_id = ?", []any{actor.ID}
	case actor.IsShipper():
		return " WHERE shipper_id = ?", []any{actor.ID}
	default:
		return "", nil
	}
}

// monthBounds returns the first instants of the current, next and previous
// calendar months in UTC.
func monthBounds(now time.Time) (time.Time, time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), start.AddDate(0, -1, 0)
}

// revenueGrowth is (month - last) / last * 100, 100 when only this month has
// revenue and 0 when neither has.
func revenueGrowth(month, last int64) float64 {
	switch {
	case last > 0:
		return decimal.NewFromInt(month - last).
			Div(decimal.NewFromInt(last)).
			Mul(decimal.NewFromInt(100)).
			Round(1).
			InexactFloat64()
	case month > 0:
		return 100
	default:
		return 0
	}
}
