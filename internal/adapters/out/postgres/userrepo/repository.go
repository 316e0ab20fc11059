package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

const uniqueViolation = "23505"

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewConflictError("user", "email is already registered")
		}
		return errs.NewInfrastructureError("insert user", err)
	}

	return aggregate.SetID(dto.ID)
}

func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Updates(mutableColumns(dto))
	if result.Error != nil {
		return errs.NewInfrastructureError("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", dto.ID)
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	return r.first(ctx, "id = ?", id, id)
}

// GetByEmail looks the address up after normalization.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	normalized := user.NormalizeEmail(email)
	return r.first(ctx, "email = ?", normalized, normalized)
}

func (r *GormUserRepository) first(ctx context.Context, where string, arg, key any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, where, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", key)
		}
		return nil, errs.NewInfrastructureError("get user", err)
	}

	return toDomain(dto)
}

// ClearExpiredOTPs nulls out reset codes whose expiry is not after now.
func (r *GormUserRepository) ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("otp_expires_at IS NOT NULL AND otp_expires_at <= ?", now).
		Updates(map[string]any{
			"otp_code":       nil,
			"otp_expires_at": nil,
			"otp_attempts":   0,
		})
	if result.Error != nil {
		return 0, errs.NewInfrastructureError("clear expired otps", result.Error)
	}
	return result.RowsAffected, nil
}
