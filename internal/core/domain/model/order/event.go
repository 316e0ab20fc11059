package order

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventCreated       = "order.created"
	EventStatusChanged = "order.status_changed"
)

// ChangedEvent is raised by the aggregate on creation and on every status
// change. Events are drained with PullEvents and stored in the outbox.
type ChangedEvent struct {
	ID             uuid.UUID `json:"event_id"`
	Type           string    `json:"event_type"`
	OrderID        int64     `json:"order_id"`
	CustomerID     int64     `json:"customer_id"`
	ShipperID      *int64    `json:"shipper_id,omitempty"`
	Status         Status    `json:"status"`
	PreviousStatus Status    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
