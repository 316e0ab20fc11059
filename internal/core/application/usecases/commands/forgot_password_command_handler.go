package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// ForgotPasswordCommandHandler issues a reset code and emails it.
//
// The code is committed before the email goes out. If sending fails the code
// is cleared again in a separate transaction so that an undelivered code can
// never be used.
type ForgotPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	otp        ports.OTPGenerator
	sender     ports.NotificationSender
	clock      ports.Clock
	ttl        time.Duration
	logger     *logrus.Entry
}

func NewForgotPasswordCommandHandler(
	uowFactory UserUoWFactory,
	otp ports.OTPGenerator,
	sender ports.NotificationSender,
	clock ports.Clock,
	ttl time.Duration,
	logger *logrus.Entry,
) ForgotPasswordCommandHandler {
	return ForgotPasswordCommandHandler{
		uowFactory: uowFactory,
		otp:        otp,
		sender:     sender,
		clock:      clock,
		ttl:        ttl,
		logger:     logger,
	}
}

func (h ForgotPasswordCommandHandler) Handle(ctx context.Context, cmd ForgotPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := h.otp.Generate()
	if err != nil {
		return errs.NewInfrastructureError("generate otp", err)
	}

	userID, name, err := h.issue(ctx, cmd.Email(), code)
	if err != nil {
		return err
	}

	notice := ports.Notification{
		To:      cmd.Email(),
		Subject: "Password reset code",
		Body: fmt.Sprintf("Hello %s,\n\nYour password reset code is %s. It expires in %d minutes.\n",
			name, code, int(h.ttl.Minutes())),
	}
	sendErr := h.sender.Send(ctx, notice)
	if sendErr == nil {
		return nil
	}

	log := h.logger.WithField("user_id", userID).WithError(sendErr)
	log.Error("failed to send reset code")
	if err = h.revoke(context.WithoutCancel(ctx), userID); err != nil {
		log.WithField("revoke_error", err.Error()).Error("failed to revoke undelivered reset code")
	}

	return errs.NewInfrastructureError("send reset code", sendErr)
}

func (h ForgotPasswordCommandHandler) issue(ctx context.Context, email, code string) (int64, string, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		return 0, "", err
	}
	if err = u.IssueOTP(code, h.ttl, h.clock.Now()); err != nil {
		return 0, "", err
	}
	if err = users.Update(ctx, u); err != nil {
		return 0, "", err
	}
	if err = uow.Commit(ctx); err != nil {
		return 0, "", err
	}

	return u.ID(), u.Name(), nil
}

func (h ForgotPasswordCommandHandler) revoke(ctx context.Context, userID int64) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.Get(ctx, userID)
	if err != nil {
		return err
	}
	u.ClearOTP()
	if err = users.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
