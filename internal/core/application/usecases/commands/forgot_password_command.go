package commands

import (
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrForgotPasswordCommandIsNotConstructed = errors.New(
	"ForgotPasswordCommand must be created via NewForgotPasswordCommand constructor",
)

type ForgotPasswordCommand struct {
	email string

	guard guard.ConstructorGuard
}

func NewForgotPasswordCommand(email string) (ForgotPasswordCommand, error) {
	email = user.NormalizeEmail(email)
	if email == "" {
		return ForgotPasswordCommand{}, errs.NewValueIsRequiredError("email")
	}

	return ForgotPasswordCommand{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ForgotPasswordCommand) Validate() error {
	return c.guard.Validate(ErrForgotPasswordCommandIsNotConstructed)
}

func (c ForgotPasswordCommand) Email() string {
	return c.email
}
