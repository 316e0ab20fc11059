package commands

import (
	"context"
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/services"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// Eligibility is the outcome of a shipper availability check.
// Reason is set when Eligible is false.
type Eligibility struct {
	Eligible     bool
	Reason       error
	Shipper      *user.User
	ActiveOrders int64
}

// ShipperAvailabilityGate answers whether a shipper can take new work right
// now. The online flag and the active order count are always read from
// storage, never from the token.
type ShipperAvailabilityGate struct {
	dispatcher services.OrderDispatcher
}

func NewShipperAvailabilityGate() ShipperAvailabilityGate {
	return ShipperAvailabilityGate{dispatcher: services.NewOrderDispatcher()}
}

// Evaluate returns the first failing reason: missing account or wrong role,
// offline, or an active order. Storage errors are returned as the second
// result and the shipper is treated as not eligible.
func (g ShipperAvailabilityGate) Evaluate(
	ctx context.Context,
	users ports.UserRepository,
	orders ports.OrderRepository,
	shipperID int64,
) (Eligibility, error) {
	shipper, err := users.Get(ctx, shipperID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return Eligibility{Reason: services.ErrNotAShipper}, nil
	}
	if err != nil {
		return Eligibility{}, err
	}

	if err = g.dispatcher.CheckAvailability(shipper, 0); err != nil {
		return Eligibility{Reason: err, Shipper: shipper}, nil
	}

	active, err := orders.CountActiveByShipper(ctx, shipperID)
	if err != nil {
		return Eligibility{}, err
	}

	if err = g.dispatcher.CheckAvailability(shipper, active); err != nil {
		return Eligibility{Reason: err, Shipper: shipper, ActiveOrders: active}, nil
	}

	return Eligibility{Eligible: true, Shipper: shipper, ActiveOrders: active}, nil
}
