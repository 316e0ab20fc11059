package queries

import (
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// OrderView is an order row joined with customer and shipper names.
type OrderView struct {
	ID              int64     `db:"id"`
	CustomerID      int64     `db:"customer_id"`
	CustomerName    *string   `db:"customer_name"`
	CustomerPhone   *string   `db:"customer_phone"`
	ShipperID       *int64    `db:"shipper_id"`
	ShipperName     *string   `db:"shipper_name"`
	ShipperPhone    *string   `db:"shipper_phone"`
	PickupAddress   string    `db:"pickup_address"`
	PickupLat       float64   `db:"pickup_lat"`
	PickupLng       float64   `db:"pickup_lng"`
	DeliveryAddress string    `db:"delivery_address"`
	DeliveryLat     float64   `db:"delivery_lat"`
	DeliveryLng     float64   `db:"delivery_lng"`
	DistanceKm      float64   `db:"distance_km"`
	Category        string    `db:"category"`
	WeightKg        float64   `db:"weight_kg"`
	BaseAmount      int64     `db:"base_amount"`
	DistanceFee     int64     `db:"distance_fee"`
	TotalAmount     int64     `db:"total_amount"`
	ShipperAmount   int64     `db:"shipper_amount"`
	AppCommission   int64     `db:"app_commission"`
	Status          string    `db:"status"`
	Notes           string    `db:"notes"`
	ProofImage      string    `db:"proof_image"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

const orderColumns = `
	o.id, o.customer_id, o.shipper_id,
	c.name AS customer_name, c.phone AS customer_phone,
	s.name AS shipper_name, s.phone AS shipper_phone,
	o.pickup_address, o.pickup_lat, o.pickup_lng,
	o.delivery_address, o.delivery_lat, o.delivery_lng,
	o.distance_km, o.category, o.weight_kg,
	o.base_amount, o.distance_fee, o.total_amount, o.shipper_amount, o.app_commission,
	o.status, o.notes, o.proof_image, o.created_at, o.updated_at`

const orderFrom = `
	FROM orders o
	LEFT JOIN users c ON c.id = o.customer_id
	LEFT JOIN users s ON s.id = o.shipper_id`

func activeStatusNames() []string {
	active := order.ActiveStatuses()
	names := make([]string, 0, len(active))
	for _, s := range active {
		names = append(names, s.String())
	}
	return names
}

// orderAccess is the part of an order that decides who may read it.
type orderAccess struct {
	CustomerID int64  `db:"customer_id"`
	ShipperID  *int64 `db:"shipper_id"`
	Status     string `db:"status"`
}

// ensureCanView applies the read rules: admins see everything, customers
// their own orders, shippers their own orders and the pending pool.
func ensureCanView(actor kernel.Actor, o orderAccess) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsCustomer() && o.CustomerID == actor.ID:
		return nil
	case actor.IsShipper() && o.Status == order.Pending.String():
		return nil
	case actor.IsShipper() && o.ShipperID != nil && *o.ShipperID == actor.ID:
		return nil
	}
	return errs.NewPermissionDeniedError("view order", "order belongs to someone else")
}
