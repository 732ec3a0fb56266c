package subscriber

import (
	"context"
	"errors"
	"time"

	"github.com/francisthore/kbsk-ecommerce-sub001/config"
	"github.com/francisthore/kbsk-ecommerce-sub001/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Handler processes one message value read from topic.
type Handler func(ctx context.Context, topic string, value []byte) error

// Publisher receives messages that exhausted their retries.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type KafkaConsumer struct {
	Readers      []messageReader
	DLQPublisher Publisher
	RetryConfig  config.RetryConfig
	Logger       logrus.FieldLogger

	sleep func(ctx context.Context, d time.Duration) error
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq Publisher,
	retryConfig config.RetryConfig,
	logger logrus.FieldLogger,
) *KafkaConsumer {
	readers := make([]messageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  retryConfig,
		Logger:       logger,
		sleep:        sleepContext,
	}
}

// Listen starts one goroutine per reader. They stop when ctx is done.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	for _, reader := range c.Readers {
		go func(r messageReader) {
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						return
					}
					c.Logger.WithError(err).Error("kafka read failed")
					if c.sleep(ctx, c.RetryConfig.BaseDelay) != nil {
						return
					}
					continue
				}
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	entry := c.Logger.WithFields(logrus.Fields{
		"topic": msg.Topic,
		"key":   string(msg.Key),
	})

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}

		backoff := c.RetryConfig.Backoff(attempt)
		entry.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"max":     c.RetryConfig.MaxAttempts,
			"backoff": backoff,
		}).Warn("handler failed, retrying")
		if c.sleep(ctx, backoff) != nil {
			return
		}
	}

	entry.WithField("attempts", c.RetryConfig.MaxAttempts).Error("message failed after retries")
	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      c.RetryConfig.MaxAttempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.OrdersDLQTopic, dlqMessage); err != nil {
		entry.WithError(err).Error("failed to send message to DLQ")
		return
	}
	entry.Info("message sent to DLQ")
}

func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
