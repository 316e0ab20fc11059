package services

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
)

const (
	PricePerKm     int64 = 10_000
	BaseFee        int64 = 15_000
	CommissionRate       = "0.20"
)

// PricingEngine computes the fare of an order from its distance.
//
// Example:
//
//	p := services.NewPricingEngine().Compute(5)
//	// p.TotalAmount = 65000, p.ShipperAmount = 52000, p.AppCommission = 13000
type PricingEngine struct {
	pricePerKm decimal.Decimal
	baseFee    decimal.Decimal
	commission decimal.Decimal
}

func NewPricingEngine() PricingEngine {
	return PricingEngine{
		pricePerKm: decimal.NewFromInt(PricePerKm),
		baseFee:    decimal.NewFromInt(BaseFee),
		commission: decimal.RequireFromString(CommissionRate),
	}
}

// Compute returns the breakdown for distanceKm. Amounts are rounded half away
// from zero to whole units and the shipper share is derived after rounding,
// so ShipperAmount + AppCommission == TotalAmount always holds.
// Negative or non-finite distances are treated as zero. Callers bound the
// distance by order.MaxDistanceKm before pricing.
func (e PricingEngine) Compute(distanceKm float64) order.Pricing {
	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		distanceKm = 0
	}

	distance := decimal.NewFromFloat(distanceKm)
	fee := distance.Mul(e.pricePerKm)
	total := e.baseFee.Add(fee).Round(0)
	commission := total.Mul(e.commission).Round(0)

	return order.Pricing{
		DistanceKm:    distance.Round(2).InexactFloat64(),
		BaseAmount:    e.baseFee.IntPart(),
		DistanceFee:   fee.Round(0).IntPart(),
		TotalAmount:   total.IntPart(),
		ShipperAmount: total.Sub(commission).IntPart(),
		AppCommission: commission.IntPart(),
	}
}
