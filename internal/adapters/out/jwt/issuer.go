// Package jwt issues and verifies HS256 bearer tokens carrying the user id
// and role.
package jwt

import (
	"errors"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

var ErrSecretIsRequired = errors.New("jwt secret is required")

type claims struct {
	Role string `json:"role"`
	jwtlib.RegisteredClaims
}

// Issuer implements ports.TokenIssuer.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	clock  ports.Clock
}

func NewIssuer(secret string, ttl time.Duration, clock ports.Clock) (*Issuer, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

func (i *Issuer) Issue(actor kernel.Actor) (string, error) {
	now := i.clock.Now()
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims{
		Role: actor.Role.String(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.ID, 10),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(i.ttl)),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", errs.NewInfrastructureError("sign token", err)
	}
	return signed, nil
}

// Verify accepts only HS256 tokens signed with the configured secret that
// carry a numeric subject and a known role.
func (i *Issuer) Verify(token string) (kernel.Actor, error) {
	var c claims
	parsed, err := jwtlib.ParseWithClaims(token, &c, func(t *jwtlib.Token) (any, error) {
		return i.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(i.clock.Now),
		jwtlib.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return kernel.Actor{}, errs.NewUnauthenticatedError("token expired")
		}
		return kernel.Actor{}, errs.NewUnauthenticatedError("invalid token")
	}

	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return kernel.Actor{}, errs.NewUnauthenticatedError("invalid token subject")
	}
	actor, err := kernel.NewActor(id, kernel.Role(c.Role))
	if err != nil {
		return kernel.Actor{}, errs.NewUnauthenticatedError("invalid token claims")
	}
	return actor, nil
}
