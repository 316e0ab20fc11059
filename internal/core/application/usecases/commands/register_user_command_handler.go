package commands

import (
	"context"
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when the email already has an account.
var ErrEmailAlreadyRegistered = errs.NewConflictError("user", "email already registered")

// AuthResult is what register and login hand back to the caller.
type AuthResult struct {
	Token string
	User  *user.User
}

type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
	clock      ports.Clock
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	clock ports.Clock,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		clock:      clock,
	}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (AuthResult, error) {
	if err := cmd.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return AuthResult{}, errs.NewInfrastructureError("hash password", err)
	}

	u, err := user.NewUser(cmd.Name(), cmd.Email(), hash, cmd.Role(), cmd.Phone(), h.clock.Now())
	if err != nil {
		return AuthResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AuthResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	_, err = users.GetByEmail(ctx, u.Email())
	switch {
	case err == nil:
		return AuthResult{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return AuthResult{}, err
	}

	if err = users.Add(ctx, u); err != nil {
		return AuthResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return AuthResult{}, err
	}

	token, err := h.tokens.Issue(kernel.Actor{ID: u.ID(), Role: u.Role()})
	if err != nil {
		return AuthResult{}, errs.NewInfrastructureError("issue token", err)
	}

	return AuthResult{Token: token, User: u}, nil
}
