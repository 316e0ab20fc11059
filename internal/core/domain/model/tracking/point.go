// Package tracking provides the shipper location log.
package tracking

import (
	"math"
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// Point is one recorded position of a shipper, optionally tied to an order.
// Points are append-only.
type Point struct {
	ShipperID  int64
	Location   kernel.Location
	AccuracyM  *float64
	OrderID    *int64
	RecordedAt time.Time
}

// NewPoint validates a location report. accuracyM, when given, is the GPS
// accuracy radius in meters and must not be negative.
func NewPoint(shipperID int64, location kernel.Location, accuracyM *float64, orderID *int64, at time.Time) (Point, error) {
	if shipperID <= 0 {
		return Point{}, errs.NewValueIsRequiredError("shipper_id")
	}
	if err := location.Validate(); err != nil {
		return Point{}, err
	}
	if accuracyM != nil && (*accuracyM < 0 || math.IsNaN(*accuracyM)) {
		return Point{}, errs.NewValueIsOutOfRangeError("accuracy", *accuracyM, 0, "+inf")
	}
	if orderID != nil && *orderID <= 0 {
		return Point{}, errs.NewValueIsInvalidError("order_id")
	}

	return Point{
		ShipperID:  shipperID,
		Location:   location,
		AccuracyM:  accuracyM,
		OrderID:    orderID,
		RecordedAt: at,
	}, nil
}
