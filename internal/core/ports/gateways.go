// Package ports defines the contracts between the core and its adapters.
package ports

import (
	"context"
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
)

// TokenIssuer issues and verifies bearer tokens carrying (id, role).
type TokenIssuer interface {
	Issue(actor kernel.Actor) (string, error)

	// Verify returns UnauthenticatedError for malformed, expired or
	// wrongly signed tokens.
	Verify(token string) (kernel.Actor, error)
}

// PasswordHasher hashes and compares passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

// OTPGenerator produces numeric one-time codes.
type OTPGenerator interface {
	Generate() (string, error)
}

// Notification is a plain-text message to a single recipient.
type Notification struct {
	To      string
	Subject string
	Body    string
}

// NotificationSender delivers notifications, typically by email.
type NotificationSender interface {
	Send(ctx context.Context, n Notification) error
}

// EventPublisher relays an outbox payload to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload []byte) error
}

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock returns UTC wall time.
var SystemClock = ClockFunc(func() time.Time { return time.Now().UTC() })
