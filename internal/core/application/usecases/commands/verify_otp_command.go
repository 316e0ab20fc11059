package commands

import (
	"errors"
	"strings"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/user"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrVerifyOTPCommandIsNotConstructed = errors.New(
	"VerifyOTPCommand must be created via NewVerifyOTPCommand constructor",
)

type VerifyOTPCommand struct {
	email string
	code  string

	guard guard.ConstructorGuard
}

func NewVerifyOTPCommand(email, code string) (VerifyOTPCommand, error) {
	email = user.NormalizeEmail(email)
	code = strings.TrimSpace(code)

	var problems []error
	if email == "" {
		problems = append(problems, errs.NewValueIsRequiredError("email"))
	}
	if code == "" {
		problems = append(problems, errs.NewValueIsRequiredError("otp"))
	}
	if err := errors.Join(problems...); err != nil {
		return VerifyOTPCommand{}, err
	}

	return VerifyOTPCommand{
		email: email,
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c VerifyOTPCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOTPCommandIsNotConstructed)
}

func (c VerifyOTPCommand) Email() string {
	return c.email
}

func (c VerifyOTPCommand) Code() string {
	return c.code
}
