package queries

import (
	"errors"
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

type GetOrderHistoryQuery struct {
	actor   kernel.Actor
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(actor kernel.Actor, orderID int64) (GetOrderHistoryQuery, error) {
	if orderID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsInvalidError("order id")
	}
	return GetOrderHistoryQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderHistoryQuery) OrderID() int64 {
	return q.orderID
}

// HistoryEntryView is one line of an order's audit trail.
type HistoryEntryView struct {
	ID        int64     `db:"id"`
	OrderID   int64     `db:"order_id"`
	Status    string    `db:"status"`
	ShipperID *int64    `db:"shipper_id"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}
