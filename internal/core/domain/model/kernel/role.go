package kernel

import (
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// Role is the account role carried by every authenticated request.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleShipper  Role = "shipper"
	RoleAdmin    Role = "admin"
)

// ParseRole converts raw input into a Role.
// Returns ValueIsInvalidError for anything outside the three known roles.
func ParseRole(raw string) (Role, error) {
	role := Role(raw)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleShipper, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated caller of a use case.
// Only the id and role are trusted from the token; everything else
// (e.g. a shipper's online flag) is re-read from storage.
type Actor struct {
	ID   int64
	Role Role
}

// NewActor builds an Actor after validating both fields.
func NewActor(id int64, role Role) (Actor, error) {
	if id <= 0 {
		return Actor{}, errs.NewValueIsInvalidError("actor id")
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: role}, nil
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

func (a Actor) IsShipper() bool {
	return a.Role == RoleShipper
}

func (a Actor) IsCustomer() bool {
	return a.Role == RoleCustomer
}
