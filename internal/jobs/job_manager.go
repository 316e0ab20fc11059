package jobs

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	otpSweepJob    *OTPSweepJob
}

func NewJobManager(
	relayer OutboxRelayer,
	batchSize int,
	sweeper OTPSweeper,
	logger *logrus.Entry,
) *JobManager {
	return &JobManager{
		outboxRelayJob: NewOutboxRelayJob(relayer, batchSize, logger),
		otpSweepJob:    NewOTPSweepJob(sweeper, logger),
	}
}

// StartAll starts all scheduled jobs. Already started jobs are stopped when a
// later one fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.otpSweepJob.Start(); err != nil {
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start otp sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.otpSweepJob.Stop()
	jm.outboxRelayJob.Stop()
}
