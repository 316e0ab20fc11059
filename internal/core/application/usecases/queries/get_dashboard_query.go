package queries

import (
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery asks for the actor's summary statistics.
type GetDashboardQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(actor kernel.Actor) GetDashboardQuery {
	return GetDashboardQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

func (q GetDashboardQuery) Actor() kernel.Actor {
	return q.actor
}

// Dashboard holds per-status counts and monthly revenue.
// Cancelled includes orders released by shippers (cancelled_by_shipper
// history entries) on top of orders in cancelled status.
type Dashboard struct {
	TotalOrders        int64
	Pending            int64
	Assigned           int64
	PickedUp           int64
	InTransit          int64
	Delivered          int64
	Cancelled          int64
	CancelledByShipper int64

	// Revenue is shipper_amount for shippers and total_amount for everyone
	// else, over delivered orders created in the calendar month.
	MonthRevenue     int64
	LastMonthRevenue int64
	// RevenueGrowth is a percentage rounded to one decimal place.
	RevenueGrowth float64
}
