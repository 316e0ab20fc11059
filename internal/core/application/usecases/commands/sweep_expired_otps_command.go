package commands

import (
	"errors"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/guard"
)

var ErrSweepExpiredOTPsCommandIsNotConstructed = errors.New(
	"SweepExpiredOTPsCommand must be created via NewSweepExpiredOTPsCommand constructor",
)

type SweepExpiredOTPsCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepExpiredOTPsCommand() (SweepExpiredOTPsCommand, error) {
	return SweepExpiredOTPsCommand{guard: guard.NewConstructorGuard()}, nil
}

func (c SweepExpiredOTPsCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredOTPsCommandIsNotConstructed)
}
