// Package userrepo maps user aggregates onto the users table.
package userrepo

import (
	"time"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
)

// UserDTO is the row shape of the users table. The reset-code columns are
// all null while no code is pending. updated_at is stamped by gorm.
type UserDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Name         string     `gorm:"type:varchar(100);not null"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:customer;index"`
	Phone        string     `gorm:"type:varchar(20);not null;default:''"`
	IsOnline     bool       `gorm:"not null;default:false"`
	LastOnline   *time.Time `gorm:"column:last_online"`
	OTPCode      *string    `gorm:"column:otp_code;type:varchar(6)"`
	OTPExpiresAt *time.Time `gorm:"column:otp_expires_at;index"`
	OTPAttempts  int        `gorm:"column:otp_attempts;not null;default:0"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	dto := UserDTO{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Phone:        u.Phone(),
		IsOnline:     u.IsOnline(),
		LastOnline:   u.LastOnline(),
		CreatedAt:    u.CreatedAt(),
	}
	if otp := u.OTP(); otp != nil {
		dto.OTPCode = &otp.Code
		dto.OTPExpiresAt = &otp.ExpiresAt
		dto.OTPAttempts = otp.Attempts
	}
	return dto
}

// mutableColumns lists what Update writes. Name, email, role and creation
// time never change after registration.
func mutableColumns(dto UserDTO) map[string]any {
	return map[string]any{
		"password_hash":  dto.PasswordHash,
		"phone":          dto.Phone,
		"is_online":      dto.IsOnline,
		"last_online":    dto.LastOnline,
		"otp_code":       dto.OTPCode,
		"otp_expires_at": dto.OTPExpiresAt,
		"otp_attempts":   dto.OTPAttempts,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	var otp *user.OTP
	if dto.OTPCode != nil && dto.OTPExpiresAt != nil {
		otp = &user.OTP{
			Code:      *dto.OTPCode,
			ExpiresAt: *dto.OTPExpiresAt,
			Attempts:  dto.OTPAttempts,
		}
	}

	return user.RestoreUser(
		dto.ID, dto.Name, dto.Email, dto.PasswordHash,
		kernel.Role(dto.Role), dto.Phone,
		dto.IsOnline, dto.LastOnline, otp, dto.CreatedAt,
	)
}
