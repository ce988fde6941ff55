package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rental-chat-service/internal/push"

	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"
)

type Sender interface {
	Send(ctx context.Context, n push.Notification) ([]push.Ticket, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer delivers push intents from Kafka with exponential backoff.
type Consumer struct {
	reader      MessageReader
	sender      Sender
	maxAttempts uint64
	baseDelay   time.Duration
}

func NewConsumer(reader MessageReader, sender Sender) *Consumer {
	return &Consumer{
		reader:      reader,
		sender:      sender,
		maxAttempts: 5,
		baseDelay:   500 * time.Millisecond,
	}
}

func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
}

func (c *Consumer) Run(ctx context.Context) error {
	slog.Info("Push consumer started")
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				slog.Info("Push consumer stopped")
				return nil
			}
			return err
		}

		if err := c.Handle(ctx, msg); err != nil {
			slog.Error("Push delivery gave up", "key", string(msg.Key), "offset", msg.Offset, "error", err)
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			slog.Error("Failed to commit push intent", "offset", msg.Offset, "error", err)
		}
	}
}

// Handle delivers one intent. Malformed payloads are not retried.
func (c *Consumer) Handle(ctx context.Context, msg kafka.Message) error {
	var env Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return err
	}

	backoff := retry.WithMaxRetries(c.maxAttempts-1, retry.NewExponential(c.baseDelay))
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		tickets, err := c.sender.Send(ctx, env.Intent)
		if err != nil {
			slog.Warn("Push delivery attempt failed", "dedupKey", env.DedupKey, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		slog.Info("Push delivered", "dedupKey", env.DedupKey, "tickets", len(tickets), "attempt", attempt)
		return nil
	})
}
