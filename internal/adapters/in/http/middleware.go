package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

const actorKey = "actor"

// publicRoutes need no bearer token.
var publicRoutes = map[string]struct{}{
	BaseURL + "/auth/register":        {},
	BaseURL + "/auth/login":           {},
	BaseURL + "/auth/forgot-password": {},
	BaseURL + "/auth/verify-otp":      {},
	BaseURL + "/auth/reset-password":  {},
	BaseURL + "/health":               {},
}

// Authenticate resolves the bearer token into a kernel.Actor stored on the
// request context. Public routes pass through untouched.
func Authenticate(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if _, ok := publicRoutes[ctx.Path()]; ok {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return errs.NewUnauthenticatedError("missing bearer token")
			}

			actor, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				return err
			}
			ctx.Set(actorKey, actor)
			return next(ctx)
		}
	}
}

func actorFrom(ctx echo.Context) (kernel.Actor, error) {
	actor, ok := ctx.Get(actorKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, errs.NewUnauthenticatedError("no authenticated user")
	}
	return actor, nil
}
