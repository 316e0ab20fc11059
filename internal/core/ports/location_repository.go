package ports

import (
	"context"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/tracking"
)

// LocationRepository appends shipper location points.
type LocationRepository interface {
	Add(ctx context.Context, point tracking.Point) error
}
