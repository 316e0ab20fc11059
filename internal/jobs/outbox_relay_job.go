package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/application/usecases/commands"
)

const (
	outboxRelaySchedule = "*/2 * * * * *"
	outboxRelayTimeout  = 10 * time.Second
)

type OutboxRelayer interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (commands.RelayOutboxResult, error)
}

// OutboxRelayJob publishes pending order events every two seconds.
// A run still in progress makes the next tick a no-op.
type OutboxRelayJob struct {
	handler   OutboxRelayer
	batchSize int
	cron      *cron.Cron
	logger    *logrus.Entry
}

func NewOutboxRelayJob(handler OutboxRelayer, batchSize int, logger *logrus.Entry) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.WithField("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(outboxRelaySchedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started (running every 2 seconds)")
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}

func (j *OutboxRelayJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), outboxRelayTimeout)
	defer cancel()

	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.WithError(err).Error("Outbox relay job misconfigured")
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.WithError(err).Error("Outbox relay job failed")
		return
	}
	if result.Published > 0 || result.Failed > 0 {
		j.logger.WithFields(logrus.Fields{
			"published": result.Published,
			"failed":    result.Failed,
		}).Debug("Outbox relay batch done")
	}
}
