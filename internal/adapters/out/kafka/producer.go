// Package kafka publishes outbox payloads to a Kafka topic.
package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/Shopify/sarama"
	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

var ErrTopicIsRequired = errors.New("kafka topic is required")

// Producer wraps a sarama SyncProducer bound to one topic.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logrus.Entry
}

// NewProducer dials brokers with acks from all in-sync replicas.
func NewProducer(brokers []string, topic string, logger *logrus.Entry) (*Producer, error) {
	if topic == "" {
		return nil, ErrTopicIsRequired
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 500 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, errs.NewInfrastructureError("create kafka producer", err)
	}

	return NewProducerWith(producer, topic, logger), nil
}

// NewProducerWith wraps an existing SyncProducer.
func NewProducerWith(producer sarama.SyncProducer, topic string, logger *logrus.Entry) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends payload keyed by key so that events of one order keep
// their relative order within a partition.
func (p *Producer) Publish(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(payload),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).WithField("key", key).Error("Failed to send message to Kafka")
		return errs.NewInfrastructureError("publish to kafka", err)
	}

	p.logger.WithFields(logrus.Fields{
		"key":       key,
		"partition": partition,
		"offset":    offset,
	}).Debug("Message sent to Kafka")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

// LogPublisher logs events instead of publishing them. Used when no broker is
// configured; messages are still marked published.
type LogPublisher struct {
	logger *logrus.Entry
}

func NewLogPublisher(logger *logrus.Entry) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, key string, payload []byte) error {
	p.logger.WithFields(logrus.Fields{
		"key":   key,
		"bytes": len(payload),
	}).Info("Kafka disabled, event logged")
	return nil
}
