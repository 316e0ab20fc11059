package order

import (
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// HistoryCancelledByShipper marks a shipper releasing an assigned order.
// It is a history-only value and never an order status.
const HistoryCancelledByShipper = "cancelled_by_shipper"

// HistoryEntry is one immutable line of an order's audit trail.
type HistoryEntry struct {
	OrderID   int64
	Status    string
	ShipperID *int64
	Note      string
	CreatedAt time.Time
}

// NewHistoryEntry records status for orderID. status must be an order status
// or HistoryCancelledByShipper.
func NewHistoryEntry(orderID int64, status string, shipperID *int64, note string, at time.Time) (HistoryEntry, error) {
	if orderID <= 0 {
		return HistoryEntry{}, errs.NewValueIsRequiredError("order_id")
	}
	if status != HistoryCancelledByShipper {
		if err := Status(status).Validate(); err != nil {
			return HistoryEntry{}, err
		}
	}
	return HistoryEntry{
		OrderID:   orderID,
		Status:    status,
		ShipperID: shipperID,
		Note:      note,
		CreatedAt: at,
	}, nil
}
