package commands

import (
	"context"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

type VerifyOTPCommandHandler struct {
	uowFactory  UserUoWFactory
	clock       ports.Clock
	maxAttempts int
}

func NewVerifyOTPCommandHandler(uowFactory UserUoWFactory, clock ports.Clock, maxAttempts int) VerifyOTPCommandHandler {
	return VerifyOTPCommandHandler{
		uowFactory:  uowFactory,
		clock:       clock,
		maxAttempts: maxAttempts,
	}
}

// Handle checks the code and persists the attempt counter whether or not the
// code matched. The verification error is returned after the commit.
func (h VerifyOTPCommandHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if u.OTP() == nil {
		return u.VerifyOTP(cmd.Code(), h.maxAttempts, h.clock.Now())
	}

	verifyErr := u.VerifyOTP(cmd.Code(), h.maxAttempts, h.clock.Now())
	if err = users.Update(ctx, u); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return verifyErr
}
