// Package crypto provides bcrypt password hashing and numeric reset codes.
package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// BcryptHasher implements ports.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher uses bcrypt.DefaultCost when cost is zero.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errs.NewInfrastructureError("hash password", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// OTPGenerator implements ports.OTPGenerator with zero-padded decimal codes.
type OTPGenerator struct {
	digits int
	limit  *big.Int
}

func NewOTPGenerator(digits int) *OTPGenerator {
	return &OTPGenerator{
		digits: digits,
		limit:  new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil),
	}
}

func (g *OTPGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.limit)
	if err != nil {
		return "", errs.NewInfrastructureError("generate otp", err)
	}
	return fmt.Sprintf("%0*d", g.digits, n), nil
}
