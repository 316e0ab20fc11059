package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
)

const (
	otpSweepSchedule = "0 * * * * *"
	otpSweepTimeout  = 30 * time.Second
)

type OTPSweeper interface {
	Handle(ctx context.Context, cmd commands.SweepExpiredOTPsCommand) (int64, error)
}

// OTPSweepJob clears expired one-time passwords once a minute.
type OTPSweepJob struct {
	handler OTPSweeper
	cron    *cron.Cron
	logger  *logrus.Entry
}

func NewOTPSweepJob(handler OTPSweeper, logger *logrus.Entry) *OTPSweepJob {
	return &OTPSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:  logger.WithField("component", "otp_sweep_job"),
	}
}

func (j *OTPSweepJob) Start() error {
	if _, err := j.cron.AddFunc(otpSweepSchedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("OTP sweep job started (running every minute)")
	return nil
}

func (j *OTPSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("OTP sweep job stopped")
}

func (j *OTPSweepJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), otpSweepTimeout)
	defer cancel()

	cmd, err := commands.NewSweepExpiredOTPsCommand()
	if err != nil {
		j.logger.WithError(err).Error("OTP sweep job misconfigured")
		return
	}

	cleared, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.WithError(err).Error("OTP sweep job failed")
		return
	}
	if cleared > 0 {
		j.logger.WithField("cleared", cleared).Info("Expired OTPs cleared")
	}
}
