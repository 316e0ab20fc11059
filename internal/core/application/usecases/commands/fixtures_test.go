package commands_test

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
)

func discardLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newStop(t *testing.T, address string, lat, lng float64) order.Stop {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	stop, err := order.NewStop(address, loc)
	require.NoError(t, err)
	return stop
}

// restoredOrder builds a stored order with the given status and shipper.
func restoredOrder(t *testing.T, id int64, status order.Status, shipperID *int64) *order.Order {
	t.Helper()
	weight, err := order.NewWeight(2.5)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		id, 7, shipperID,
		newStop(t, "12 Le Loi", 10.7769, 106.7009),
		newStop(t, "45 Hai Ba Trung", 10.7870, 106.7050),
		order.Food, weight, services.NewPricingEngine().Compute(3),
		status, "", "", testNow.Add(-time.Hour), testNow.Add(-time.Hour),
	)
	require.NoError(t, err)
	return o
}

func restoredUser(t *testing.T, id int64, role kernel.Role, online bool, otp *user.OTP) *user.User {
	t.Helper()
	u, err := user.RestoreUser(id, "Nguyen Van A", "a@example.com", "stored-hash", role, "0901234567",
		online, nil, otp, testNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return u
}

func ptr[T any](v T) *T {
	return &v
}
