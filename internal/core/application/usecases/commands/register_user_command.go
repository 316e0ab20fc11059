package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/domain/model/kernel"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

const PasswordMinRunes = 6

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

type RegisterUserCommand struct {
	name     string
	email    string
	password string
	role     kernel.Role
	phone    string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand checks the raw password and role. An empty role
// means customer. Profile fields are validated by the user aggregate.
func NewRegisterUserCommand(name, email, password, role, phone string) (RegisterUserCommand, error) {
	var problems []error
	if utf8.RuneCountInString(password) < PasswordMinRunes {
		problems = append(problems, errs.NewValueIsOutOfRangeError(
			"password length", utf8.RuneCountInString(password), PasswordMinRunes, "unbounded"))
	}

	parsed := kernel.RoleCustomer
	if role = strings.TrimSpace(role); role != "" {
		r, err := kernel.ParseRole(role)
		if err != nil {
			problems = append(problems, err)
		}
		parsed = r
	}
	if err := errors.Join(problems...); err != nil {
		return RegisterUserCommand{}, err
	}

	return RegisterUserCommand{
		name:     name,
		email:    email,
		password: password,
		role:     parsed,
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Role() kernel.Role {
	return c.role
}

func (c RegisterUserCommand) Phone() string {
	return c.phone
}
