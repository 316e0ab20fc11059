package commands

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
)

// RelayOutboxResult counts what a relay run did.
type RelayOutboxResult struct {
	Published int
	Failed    int
}

// RelayOutboxCommandHandler moves pending outbox messages to the broker.
// Messages are locked for the duration of the transaction, so concurrent
// relays never publish the same row twice. A failed publish is recorded on
// the row and retried on the next run.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
	logger     *logrus.Entry
}

func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
	logger *logrus.Entry,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger,
	}
}

func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayOutboxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	messages, err := outbox.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return RelayOutboxResult{}, err
	}

	var result RelayOutboxResult
	for _, msg := range messages {
		if pubErr := h.publisher.Publish(ctx, strconv.FormatInt(msg.AggregateID, 10), msg.Payload); pubErr != nil {
			h.logger.WithFields(logrus.Fields{
				"message_id": msg.ID,
				"event_type": msg.EventType,
				"attempts":   msg.Attempts + 1,
			}).WithError(pubErr).Warn("failed to publish outbox message")

			if err = outbox.MarkFailed(ctx, msg.ID, pubErr.Error()); err != nil {
				return result, err
			}
			result.Failed++
			continue
		}

		if err = outbox.MarkPublished(ctx, msg.ID, h.clock.Now()); err != nil {
			return result, err
		}
		result.Published++
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	return result, nil
}
