package order

import (
	"fmt"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// MaxDistanceKm is the longest trip an order may be priced for. It is half
// the Earth's circumference, which keeps every amount far inside int64.
const MaxDistanceKm = 20_000

// Pricing is the fare breakdown stored on an order. Amounts are whole
// currency units. ShipperAmount + AppCommission always equals TotalAmount.
type Pricing struct {
	DistanceKm    float64
	BaseAmount    int64
	DistanceFee   int64
	TotalAmount   int64
	ShipperAmount int64
	AppCommission int64
}

// Validate checks the split and sign rules of a stored breakdown.
func (p Pricing) Validate() error {
	if p.DistanceKm < 0 || p.DistanceKm > MaxDistanceKm {
		return errs.NewValueIsOutOfRangeError("distance_km", p.DistanceKm, 0, MaxDistanceKm)
	}
	if p.TotalAmount < 0 || p.ShipperAmount < 0 || p.AppCommission < 0 {
		return errs.NewValueIsInvalidError("pricing amounts must not be negative")
	}
	if p.ShipperAmount+p.AppCommission != p.TotalAmount {
		return errs.NewValueIsInvalidErrorWithCause("pricing", fmt.Errorf(
			"shipper %d + commission %d != total %d", p.ShipperAmount, p.AppCommission, p.TotalAmount))
	}
	return nil
}
