package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RelayStore interface {
	Pending(ctx context.Context, limit int) ([]Entry, error)
	MarkPublished(ctx context.Context, id primitive.ObjectID) error
	MarkFailed(ctx context.Context, id primitive.ObjectID, cause error) error
	MarkDead(ctx context.Context, id primitive.ObjectID, cause error) error
}

const defaultMaxAttempts = 10

// Relay moves pending outbox entries to Kafka.
type Relay struct {
	store     RelayStore
	producer  sarama.SyncProducer
	topic     string
	period    time.Duration
	batchSize int

	// publish attempts before an entry is marked failed
	maxAttempts int
}

func NewRelay(store RelayStore, producer sarama.SyncProducer, topic string, period time.Duration, batchSize, maxAttempts int) *Relay {
	if period <= 0 {
		period = 2 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Relay{
		store:       store,
		producer:    producer,
		topic:       topic,
		period:      period,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

func (r *Relay) Run(ctx context.Context) error {
	slog.Info("Outbox relay started", "topic", r.topic, "period", r.period)
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		if n, err := r.RelayOnce(ctx); err != nil {
			slog.Error("Outbox relay pass failed", "error", err)
		} else if n > 0 {
			slog.Debug("Outbox entries published", "count", n)
		}

		select {
		case <-ctx.Done():
			slog.Info("Outbox relay stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// RelayOnce publishes one batch and returns how many entries were published.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	entries, err := r.store.Pending(ctx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending entries: %w", err)
	}

	published := 0
	for _, e := range entries {
		payload, err := json.Marshal(Envelope{DedupKey: e.DedupKey, Intent: e.Intent})
		if err != nil {
			slog.Error("Failed to encode outbox entry", "id", e.ID.Hex(), "error", err)
			continue
		}

		partition, offset, err := r.producer.SendMessage(&sarama.ProducerMessage{
			Topic: r.topic,
			Key:   sarama.StringEncoder(e.DedupKey),
			Value: sarama.ByteEncoder(payload),
		})
		if err != nil {
			r.fail(ctx, e, err)
			continue
		}

		if err := r.store.MarkPublished(ctx, e.ID); err != nil {
			slog.Error("Failed to mark outbox entry published", "id", e.ID.Hex(), "error", err)
			continue
		}
		slog.Debug("Outbox entry published", "dedupKey", e.DedupKey, "partition", partition, "offset", offset)
		published++
	}
	return published, nil
}

func (r *Relay) fail(ctx context.Context, e Entry, cause error) {
	if e.Attempts+1 >= r.maxAttempts {
		slog.Error("Giving up on outbox entry", "id", e.ID.Hex(), "dedupKey", e.DedupKey, "attempts", e.Attempts+1, "error", cause)
		if err := r.store.MarkDead(ctx, e.ID, cause); err != nil {
			slog.Error("Failed to mark outbox entry failed", "id", e.ID.Hex(), "error", err)
		}
		return
	}

	slog.Warn("Failed to publish outbox entry", "id", e.ID.Hex(), "attempts", e.Attempts+1, "error", cause)
	if err := r.store.MarkFailed(ctx, e.ID, cause); err != nil {
		slog.Error("Failed to record outbox failure", "id", e.ID.Hex(), "error", err)
	}
}
