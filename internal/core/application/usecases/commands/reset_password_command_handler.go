package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

var ErrPasswordUnchanged = errs.NewValueIsInvalidErrorWithCause("new password",
	errors.New("must differ from the current password"))

type ResetPasswordCommandHandler struct {
	uowFactory  UserUoWFactory
	hasher      ports.PasswordHasher
	sender      ports.NotificationSender
	clock       ports.Clock
	maxAttempts int
	logger      *logrus.Entry
}

func NewResetPasswordCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	sender ports.NotificationSender,
	clock ports.Clock,
	maxAttempts int,
	logger *logrus.Entry,
) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory:  uowFactory,
		hasher:      hasher,
		sender:      sender,
		clock:       clock,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Handle re-checks the code against the same attempt limit as VerifyOTP, then
// stores the new hash and consumes the code. A failed check is persisted so
// wrong guesses count across both endpoints. The
// password-changed notice is sent in the background and its failure is only
// logged.
func (h ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
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

	hadOTP := u.OTP() != nil
	if verifyErr := u.VerifyOTP(cmd.Code(), h.maxAttempts, h.clock.Now()); verifyErr != nil {
		if hadOTP {
			if err = users.Update(ctx, u); err != nil {
				return err
			}
			if err = uow.Commit(ctx); err != nil {
				return err
			}
		}
		return verifyErr
	}

	if h.hasher.Matches(u.PasswordHash(), cmd.NewPassword()) {
		return ErrPasswordUnchanged
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return errs.NewInfrastructureError("hash password", err)
	}
	if err = u.ResetPassword(hash); err != nil {
		return err
	}
	if err = users.Update(ctx, u); err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notice := ports.Notification{
		To:      u.Email(),
		Subject: "Your password was changed",
		Body:    fmt.Sprintf("Hello %s,\n\nThe password of your account was changed just now.\n", u.Name()),
	}
	go h.notify(context.WithoutCancel(ctx), u.ID(), notice)

	return nil
}

func (h ResetPasswordCommandHandler) notify(ctx context.Context, userID int64, n ports.Notification) {
	if err := h.sender.Send(ctx, n); err != nil {
		h.logger.WithField("user_id", userID).WithError(err).Warn("failed to send password changed notice")
	}
}
