package commands

import (
	"context"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

// SweepExpiredOTPsCommandHandler clears reset codes whose expiry has passed.
type SweepExpiredOTPsCommandHandler struct {
	uowFactory UserUoWFactory
	clock      ports.Clock
}

func NewSweepExpiredOTPsCommandHandler(uowFactory UserUoWFactory, clock ports.Clock) SweepExpiredOTPsCommandHandler {
	return SweepExpiredOTPsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the number of cleared codes.
func (h SweepExpiredOTPsCommandHandler) Handle(ctx context.Context, cmd SweepExpiredOTPsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cleared, err := uow.UserRepository().ClearExpiredOTPs(ctx, h.clock.Now())
	if err != nil {
		return 0, err
	}
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cleared, nil
}
