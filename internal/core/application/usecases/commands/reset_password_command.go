package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

const NewPasswordMinRunes = 8

var ErrResetPasswordCommandIsNotConstructed = errors.New(
	"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
)

type ResetPasswordCommand struct {
	email       string
	code        string
	newPassword string

	guard guard.ConstructorGuard
}

func NewResetPasswordCommand(email, code, newPassword string) (ResetPasswordCommand, error) {
	email = user.NormalizeEmail(email)
	code = strings.TrimSpace(code)

	var problems []error
	if email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if code == "" {
		problems = append(problems, errs.NewValueIsRequiredError("otp"))
	}
	if n := utf8.RuneCountInString(newPassword); n < NewPasswordMinRunes {
		problems = append(problems, errs.NewValueIsOutOfRangeError("new password length", n, NewPasswordMinRunes, "unbounded"))
	}
	if err := errors.Join(problems...); err != nil {
		return ResetPasswordCommand{}, err
	}

	return ResetPasswordCommand{
		email:       email,
		code:        code,
		newPassword: newPassword,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

func (c ResetPasswordCommand) Email() string {
	return c.email
}

func (c ResetPasswordCommand) Code() string {
	return c.code
}

func (c ResetPasswordCommand) NewPassword() string {
	return c.newPassword
}
