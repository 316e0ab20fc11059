package ports

import (
	"context"
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user and sets its storage-assigned id.
	// A duplicate email yields ConflictError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists profile, online flag, password and reset-code state.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by id or returns ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail retrieves a user by normalized email or returns ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ClearExpiredOTPs drops reset codes that expired before now and returns
	// how many were cleared.
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}
