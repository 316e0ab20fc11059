// Package orderrepo maps order aggregates and their status history onto the
// orders and order_history tables.
package orderrepo

import (
	"errors"
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
)

// OrderDTO is the row shape of the orders table. Timestamps come from the
// domain clock, so gorm's automatic time tracking is switched off.
type OrderDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID      int64     `gorm:"not null;index"`
	ShipperID       *int64    `gorm:"index"`
	PickupAddress   string    `gorm:"type:text;not null"`
	PickupLat       float64   `gorm:"type:double precision;not null"`
	PickupLng       float64   `gorm:"type:double precision;not null"`
	DeliveryAddress string    `gorm:"type:text;not null"`
	DeliveryLat     float64   `gorm:"type:double precision;not null"`
	DeliveryLng     float64   `gorm:"type:double precision;not null"`
	DistanceKm      float64   `gorm:"type:double precision;not null"`
	Category        string    `gorm:"type:varchar(32);not null;default:regular"`
	WeightKg        float64   `gorm:"type:double precision;not null"`
	BaseAmount      int64     `gorm:"not null"`
	DistanceFee     int64     `gorm:"not null"`
	TotalAmount     int64     `gorm:"not null"`
	ShipperAmount   int64     `gorm:"not null"`
	AppCommission   int64     `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	Notes           string    `gorm:"type:text;not null;default:''"`
	ProofImage      string    `gorm:"type:text;not null;default:''"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO is one row of the append-only order_history table.
type HistoryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	ShipperID *int64    `gorm:"index"`
	Note      string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

func (HistoryDTO) TableName() string {
	return "order_history"
}

func fromDomain(o *order.Order) OrderDTO {
	pricing := o.Pricing()
	return OrderDTO{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		ShipperID:       o.Shipper(),
		PickupAddress:   o.Pickup().Address(),
		PickupLat:       o.Pickup().Location().Latitude(),
		PickupLng:       o.Pickup().Location().Longitude(),
		DeliveryAddress: o.Delivery().Address(),
		DeliveryLat:     o.Delivery().Location().Latitude(),
		DeliveryLng:     o.Delivery().Location().Longitude(),
		DistanceKm:      pricing.DistanceKm,
		Category:        o.Category().String(),
		WeightKg:        o.Weight().Kg(),
		BaseAmount:      pricing.BaseAmount,
		DistanceFee:     pricing.DistanceFee,
		TotalAmount:     pricing.TotalAmount,
		ShipperAmount:   pricing.ShipperAmount,
		AppCommission:   pricing.AppCommission,
		Status:          o.Status().String(),
		Notes:           o.Notes(),
		ProofImage:      o.ProofImage(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// mutableColumns lists what may change after creation. Everything else is
// fixed at insert time.
func mutableColumns(o *order.Order) map[string]any {
	return map[string]any{
		"shipper_id":  o.Shipper(),
		"status":      o.Status().String(),
		"notes":       o.Notes(),
		"proof_image": o.ProofImage(),
		"updated_at":  o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	pickup, pickupErr := stopFromColumns(dto.PickupAddress, dto.PickupLat, dto.PickupLng)
	delivery, deliveryErr := stopFromColumns(dto.DeliveryAddress, dto.DeliveryLat, dto.DeliveryLng)
	weight, weightErr := order.NewWeight(dto.WeightKg)
	if err := errors.Join(pickupErr, deliveryErr, weightErr); err != nil {
		return nil, err
	}

	category, _ := order.ParseCategory(dto.Category)
	pricing := order.Pricing{
		DistanceKm:    dto.DistanceKm,
		BaseAmount:    dto.BaseAmount,
		DistanceFee:   dto.DistanceFee,
		TotalAmount:   dto.TotalAmount,
		ShipperAmount: dto.ShipperAmount,
		AppCommission: dto.AppCommission,
	}

	return order.RestoreOrder(
		dto.ID, dto.CustomerID, dto.ShipperID,
		pickup, delivery, category, weight, pricing,
		order.Status(dto.Status), dto.Notes, dto.ProofImage,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func stopFromColumns(address string, lat, lng float64) (order.Stop, error) {
	loc, err := kernel.NewLocation(lat, lng)
	if err != nil {
		return order.Stop{}, err
	}
	return order.NewStop(address, loc)
}

func historyFromDomain(entry order.HistoryEntry) HistoryDTO {
	return HistoryDTO{
		OrderID:   entry.OrderID,
		Status:    entry.Status,
		ShipperID: entry.ShipperID,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	}
}
