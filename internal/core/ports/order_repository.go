package ports

import (
	"context"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/order"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

var (
	// ErrOrderStatusChanged is returned by Update when the stored status no
	// longer equals the expected one.
	ErrOrderStatusChanged = errs.NewConflictError("order", "order status changed concurrently")

	// ErrShipperAlreadyBusy is returned when a write would give a shipper a
	// second active order.
	ErrShipperAlreadyBusy = errs.NewConflictError("order", "shipper already has an active order")
)

// OrderRepository defines the persistence contract for order aggregates and
// their status history.
type OrderRepository interface {
	// Add persists a new order and sets its storage-assigned id.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate only if the stored status still equals
	// expected. The check and the write are one statement, so of two
	// concurrent writers observing the same status exactly one succeeds;
	// the other gets ErrOrderStatusChanged.
	Update(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order by id or returns ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// CountActiveByShipper counts the shipper's orders in assigned, picked_up
	// or in_transit.
	CountActiveByShipper(ctx context.Context, shipperID int64) (int64, error)

	// AppendHistory adds one immutable audit entry.
	AppendHistory(ctx context.Context, entry order.HistoryEntry) error
}
