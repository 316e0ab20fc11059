package commands

import (
	"context"
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

var ErrInvalidCredentials = errs.NewUnauthenticatedError("invalid email or password")

type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle does not tell an unknown email apart from a wrong password.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, err
	}

	if !h.hasher.Matches(u.PasswordHash(), cmd.Password()) {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(kernel.Actor{ID: u.ID(), Role: u.Role()})
	if err != nil {
		return AuthResult{}, errs.NewInfrastructureError("issue token", err)
	}

	return AuthResult{Token: token, User: u}, nil
}
