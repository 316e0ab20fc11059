package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a domain event waiting to be relayed to the broker.
type OutboxMessage struct {
	ID          uuid.UUID
	AggregateID int64
	EventType   string
	Payload     []byte
	Attempts    int
	CreatedAt   time.Time
}

// OutboxRepository stores events in the same transaction as the state change
// that raised them, and tracks their delivery.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...OutboxMessage) error

	// GetUnpublished returns up to limit undelivered messages, oldest first.
	// Inside a transaction the rows stay locked and are skipped by other relays.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error

	// MarkFailed increments the attempt counter and records lastError.
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error
}
