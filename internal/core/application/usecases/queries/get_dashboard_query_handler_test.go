package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/queries"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

var testClock = ports.ClockFunc(func() time.Time { return testNow })

func TestGetDashboardQueryHandler_Handle(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice", "customer", false)
	bob := seedUser(t, db, "bob", "customer", false)
	sam := seedUser(t, db, "sam", "shipper", true)
	otto := seedUser(t, db, "otto", "shipper", true)

	lastMonth := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC)
	twoMonthsAgo := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

	seedOrder(t, db, seededOrder{customerID: alice, shipperID: &sam, status: "delivered", total: 400, shipper: 320})
	seedOrder(t, db, seededOrder{customerID: alice, shipperID: &sam, status: "delivered", total: 200, shipper: 160})
	seedOrder(t, db, seededOrder{customerID: alice, shipperID: &sam, status: "delivered", total: 200, shipper: 160, createdAt: lastMonth})
	seedOrder(t, db, seededOrder{customerID: alice, shipperID: &sam, status: "delivered", total: 999, shipper: 800, createdAt: twoMonthsAgo})
	seedOrder(t, db, seededOrder{customerID: alice, shipperID: &sam, status: "in_transit", total: 500, shipper: 400})
	released := seedOrder(t, db, seededOrder{customerID: alice, status: "pending"})
	seedOrder(t, db, seededOrder{customerID: bob, status: "cancelled"})
	bobsReleased := seedOrder(t, db, seededOrder{customerID: bob, status: "pending"})

	seedHistory(t, db, released, "cancelled_by_shipper", &sam, testNow)
	seedHistory(t, db, bobsReleased, "cancelled_by_shipper", &otto, testNow)

	handler := queries.NewGetDashboardQueryHandler(db, testClock)
	dashboard := func(actor kernel.Actor) queries.Dashboard {
		t.Helper()
		d, err := handler.Handle(t.Context(), queries.NewGetDashboardQuery(actor))
		require.NoError(t, err)
		return d
	}

	t.Run("customer revenue and growth", func(t *testing.T) {
		d := dashboard(kernel.Actor{ID: alice, Role: kernel.RoleCustomer})

		assert.Equal(t, int64(6), d.TotalOrders)
		assert.Equal(t, int64(4), d.Delivered)
		assert.Equal(t, int64(1), d.InTransit)
		assert.Equal(t, int64(1), d.Pending)
		assert.Equal(t, int64(600), d.MonthRevenue)
		assert.Equal(t, int64(200), d.LastMonthRevenue)
		assert.InDelta(t, 200.0, d.RevenueGrowth, 1e-9)
		assert.Equal(t, int64(1), d.Cancelled)
		assert.Equal(t, int64(1), d.CancelledByShipper)
	})

	t.Run("shipper revenue uses the shipper share", func(t *testing.T) {
		d := dashboard(kernel.Actor{ID: sam, Role: kernel.RoleShipper})

		assert.Equal(t, int64(5), d.TotalOrders)
		assert.Equal(t, int64(480), d.MonthRevenue)
		assert.Equal(t, int64(160), d.LastMonthRevenue)
		assert.InDelta(t, 200.0, d.RevenueGrowth, 1e-9)
		assert.Equal(t, int64(1), d.Cancelled)
	})

	t.Run("admin sees everything", func(t *testing.T) {
		d := dashboard(kernel.Actor{ID: 1, Role: kernel.RoleAdmin})

		assert.Equal(t, int64(8), d.TotalOrders)
		assert.Equal(t, int64(2), d.Pending)
		assert.Equal(t, int64(3), d.Cancelled)
		assert.Equal(t, int64(2), d.CancelledByShipper)
	})

	t.Run("no revenue at all", func(t *testing.T) {
		d := dashboard(kernel.Actor{ID: bob, Role: kernel.RoleCustomer})

		assert.Zero(t, d.MonthRevenue)
		assert.Zero(t, d.RevenueGrowth)
		assert.Equal(t, int64(2), d.Cancelled)
	})
}

func TestGetDashboardQueryHandler_GrowthWithoutLastMonth(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice", "customer", false)
	seedOrder(t, db, seededOrder{customerID: alice, status: "delivered", total: 300, shipper: 240})

	d, err := queries.NewGetDashboardQueryHandler(db, testClock).
		Handle(t.Context(), queries.NewGetDashboardQuery(kernel.Actor{ID: alice, Role: kernel.RoleCustomer}))

	require.NoError(t, err)
	assert.InDelta(t, 100.0, d.RevenueGrowth, 1e-9)
}

func TestGetDashboardQueryHandler_GrowthIsRounded(t *testing.T) {
	db := openTestDB(t)
	alice := seedUser(t, db, "alice", "customer", false)
	seedOrder(t, db, seededOrder{customerID: alice, status: "delivered", total: 200, shipper: 160})
	seedOrder(t, db, seededOrder{customerID: alice, status: "delivered", total: 300, shipper: 240,
		createdAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)})

	d, err := queries.NewGetDashboardQueryHandler(db, testClock).
		Handle(t.Context(), queries.NewGetDashboardQuery(kernel.Actor{ID: alice, Role: kernel.RoleCustomer}))

	require.NoError(t, err)
	assert.InDelta(t, -33.3, d.RevenueGrowth, 1e-9)
}
