package user

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

const (
	NameMinRunes = 2
	NameMaxRunes = 100
	OTPLength    = 6
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrIDIsAlreadySet       = errors.New("user id is already set")
	ErrOTPNotRequested      = errors.New("no reset code was requested or it was already used")
	ErrOTPExpired           = errors.New("reset code has expired")

	phonePattern = regexp.MustCompile(`^[0-9]{10,11}$`)
	otpPattern   = regexp.MustCompile(`^[0-9]{6}$`)
)

// OTP is the pending password-reset code of a user.
type OTP struct {
	Code      string
	ExpiresAt time.Time
	Attempts  int
}

// User is an account of any role. Shippers additionally carry an online flag.
type User struct {
	id           int64
	name         string
	email        string
	passwordHash string
	role         kernel.Role
	phone        string
	isOnline     bool
	lastOnline   *time.Time
	otp          *OTP
	createdAt    time.Time

	isConstructed bool
}

// NewUser validates profile fields and creates an offline user.
// passwordHash must already be hashed.
func NewUser(name, email, passwordHash string, role kernel.Role, phone string, now time.Time) (*User, error) {
	u := &User{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		role.Validate(),
		u.setPhone(phone),
	); err != nil {
		return nil, err
	}
	u.role = role

	return u, nil
}

// RestoreUser rehydrates a user from storage without re-running profile validation.
func RestoreUser(
	id int64,
	name, email, passwordHash string,
	role kernel.Role,
	phone string,
	isOnline bool,
	lastOnline *time.Time,
	otp *OTP,
	createdAt time.Time,
) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("user id")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		phone:         phone,
		isOnline:      isOnline,
		lastOnline:    lastOnline,
		otp:           otp,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// NormalizeEmail lowercases and trims an address before lookup or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// SetID records the storage-assigned identifier. It can be called once.
func (u *User) SetID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("user id")
	}
	if u.id != 0 {
		return ErrIDIsAlreadySet
	}
	u.id = id
	return nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() kernel.Role {
	return u.role
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) IsOnline() bool {
	return u.isOnline
}

func (u *User) LastOnline() *time.Time {
	return u.lastOnline
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// OTP returns a copy of the pending reset code, or nil.
func (u *User) OTP() *OTP {
	if u.otp == nil {
		return nil
	}
	otp := *u.otp
	return &otp
}

func (u *User) IsShipper() bool {
	return u.role == kernel.RoleShipper
}

// SetOnline toggles the availability flag and stamps last_online.
func (u *User) SetOnline(online bool, now time.Time) {
	u.isOnline = online
	u.lastOnline = &now
}

// IssueOTP replaces any pending code with a fresh one valid for ttl.
func (u *User) IssueOTP(code string, ttl time.Duration, now time.Time) error {
	if !otpPattern.MatchString(code) {
		return errs.NewValueIsInvalidError("otp")
	}
	u.otp = &OTP{Code: code, ExpiresAt: now.Add(ttl)}
	return nil
}

// VerifyOTP checks code against the pending reset code and counts attempts.
//
// Rules, in order:
//   - no pending code: ValueIsInvalidError
//   - attempts already at maxAttempts: the code is cleared, TooManyAttemptsError
//   - expired: the code is cleared, ValueIsInvalidError
//   - mismatch: attempts is incremented, ValueIsInvalidError with the remaining count
//   - match: attempts reset to zero and the code stays for ResetPassword
//
// The aggregate is mutated even when an error is returned; callers persist it either way.
func (u *User) VerifyOTP(code string, maxAttempts int, now time.Time) error {
	if u.otp == nil {
		return errs.NewValueIsInvalidErrorWithCause("otp", ErrOTPNotRequested)
	}
	if u.otp.Attempts >= maxAttempts {
		u.otp = nil
		return errs.NewTooManyAttemptsError("otp", maxAttempts)
	}
	if !now.Before(u.otp.ExpiresAt) {
		u.otp = nil
		return errs.NewValueIsInvalidErrorWithCause("otp", ErrOTPExpired)
	}
	if u.otp.Code != code {
		u.otp.Attempts++
		return errs.NewValueIsInvalidErrorWithCause("otp",
			fmt.Errorf("code does not match, %d attempts remaining", maxAttempts-u.otp.Attempts))
	}

	u.otp.Attempts = 0
	return nil
}

// ResetPassword stores the new hash and consumes the reset code.
// Callers confirm the code with VerifyOTP first.
func (u *User) ResetPassword(newPasswordHash string) error {
	if u.otp == nil {
		return errs.NewValueIsInvalidErrorWithCause("otp", ErrOTPNotRequested)
	}
	if err := u.setPasswordHash(newPasswordHash); err != nil {
		return err
	}

	u.otp = nil
	return nil
}

// ClearOTP drops any pending reset code.
func (u *User) ClearOTP() {
	u.otp = nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < NameMinRunes || n > NameMaxRunes {
		return errs.NewValueIsOutOfRangeError("name length", n, NameMinRunes, NameMaxRunes)
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidError("phone")
	}
	u.phone = phone
	return nil
}
