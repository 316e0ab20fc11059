package queries

import (
	"errors"
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var (
	ErrGetShipperLocationQueryIsNotConstructed = errors.New(
		"GetShipperLocationQuery must be created via NewGetShipperLocationQuery constructor",
	)
	ErrGetOrderLocationHistoryQueryIsNotConstructed = errors.New(
		"GetOrderLocationHistoryQuery must be created via NewGetOrderLocationHistoryQuery constructor",
	)
)

// LocationView is one recorded shipper position.
type LocationView struct {
	ID         int64     `db:"id"`
	ShipperID  int64     `db:"shipper_id"`
	Latitude   float64   `db:"latitude"`
	Longitude  float64   `db:"longitude"`
	AccuracyM  *float64  `db:"accuracy_m"`
	OrderID    *int64    `db:"order_id"`
	RecordedAt time.Time `db:"recorded_at"`
}

// GetShipperLocationQuery asks for a shipper's latest position.
type GetShipperLocationQuery struct {
	actor     kernel.Actor
	shipperID int64

	guard guard.ConstructorGuard
}

func NewGetShipperLocationQuery(actor kernel.Actor, shipperID int64) (GetShipperLocationQuery, error) {
	if shipperID <= 0 {
		return GetShipperLocationQuery{}, errs.NewValueIsInvalidError("shipper id")
	}
	return GetShipperLocationQuery{actor: actor, shipperID: shipperID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipperLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetShipperLocationQueryIsNotConstructed)
}

func (q GetShipperLocationQuery) ShipperID() int64 {
	return q.shipperID
}

// GetOrderLocationHistoryQuery asks for the track of the shipper serving an order.
type GetOrderLocationHistoryQuery struct {
	actor   kernel.Actor
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderLocationHistoryQuery(actor kernel.Actor, orderID int64) (GetOrderLocationHistoryQuery, error) {
	if orderID <= 0 {
		return GetOrderLocationHistoryQuery{}, errs.NewValueIsInvalidError("order id")
	}
	return GetOrderLocationHistoryQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderLocationHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLocationHistoryQueryIsNotConstructed)
}

func (q GetOrderLocationHistoryQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderLocationHistoryQuery) OrderID() int64 {
	return q.orderID
}
