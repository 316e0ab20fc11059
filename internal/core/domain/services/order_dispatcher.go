package services

import (
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

var (
	ErrNotAShipper = errs.NewPermissionDeniedError("take order", "account is not a shipper")

	ErrShipperOffline = errs.NewRuleViolationError("shipper online",
		"shipper must be online to take orders")

	ErrShipperHasActiveOrder = errs.NewConflictError("order", "finish current order first")

	ErrOrderNoLongerPending = errs.NewConflictError("order", "order is no longer available")

	// ErrOrderAlreadyTaken is the outcome of losing the race for a pending order.
	ErrOrderAlreadyTaken = errs.NewConflictError("order", "order already taken")
)

// OrderDispatcher decides whether a shipper may take an order and performs
// the assignment on the aggregate.
//
// Business rules:
//   - only shippers can be assigned
//   - the shipper must be online
//   - self-assignment requires zero active orders and a pending order
//   - admin assignment checks role and online flag only
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	if err := dispatcher.Accept(o, shipper, activeOrders, time.Now()); err != nil {
//	    // err is one of the reason errors above
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// CheckAvailability returns the first failing reason why shipper cannot take
// new work, or nil.
func (d OrderDispatcher) CheckAvailability(shipper *user.User, activeOrders int64) error {
	if err := shipper.Validate(); err != nil {
		return err
	}
	if !shipper.IsShipper() {
		return ErrNotAShipper
	}
	if !shipper.IsOnline() {
		return ErrShipperOffline
	}
	if activeOrders > 0 {
		return ErrShipperHasActiveOrder
	}
	return nil
}

// Accept assigns a pending order to a shipper taking it for themselves.
func (d OrderDispatcher) Accept(o *order.Order, shipper *user.User, activeOrders int64, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := d.CheckAvailability(shipper, activeOrders); err != nil {
		return err
	}
	if o.Status() != order.Pending {
		return ErrOrderNoLongerPending
	}

	return o.Assign(shipper.ID(), now)
}

// Reassign attaches target to o on behalf of an admin. The order may be
// pending or already assigned to someone else.
func (d OrderDispatcher) Reassign(o *order.Order, target *user.User, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if !target.IsShipper() {
		return errs.NewValueIsInvalidError("shipper_id does not belong to a shipper")
	}
	if !target.IsOnline() {
		return ErrShipperOffline
	}

	return o.Assign(target.ID(), now)
}
