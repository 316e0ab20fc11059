// Package locationrepo appends shipper positions to shipper_locations.
package locationrepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/tracking"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// PointDTO is one row of shipper_locations.
type PointDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ShipperID  int64     `gorm:"not null;index:ix_shipper_locations_shipper_time,priority:1"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	AccuracyM  *float64  `gorm:"column:accuracy_m;type:double precision"`
	OrderID    *int64    `gorm:"index"`
	RecordedAt time.Time `gorm:"not null;index:ix_shipper_locations_shipper_time,priority:2"`
}

func (PointDTO) TableName() string {
	return "shipper_locations"
}

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) Add(ctx context.Context, point tracking.Point) error {
	dto := PointDTO{
		ShipperID:  point.ShipperID,
		Latitude:   point.Location.Latitude(),
		Longitude:  point.Location.Longitude(),
		AccuracyM:  point.AccuracyM,
		OrderID:    point.OrderID,
		RecordedAt: point.RecordedAt,
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewInfrastructureError("insert location", err)
	}
	return nil
}
