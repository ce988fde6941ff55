package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rental-chat-service/internal/database"

	"github.com/redis/go-redis/v9"
)

const (
	RoomChannelPrefix = "ws:room:"
	ConnChannelPrefix = "ws:conn:"
	BroadcastChannel  = "ws:all"

	dedupKeyPrefix = "push:dedup:"
)

type RedisService struct {
	client *database.RedisClient
}

func NewRedisService(client *database.RedisClient) *RedisService {
	return &RedisService{
		client: client,
	}
}

// =============================================================================
// Push Deduplication
// =============================================================================

// Claim sets push:dedup:<key> only if absent. The first caller wins and later callers get its value.
func (r *RedisService) Claim(ctx context.Context, key, value string, ttl time.Duration) (bool, string, error) {
	rc := r.client.GetClient()
	// a second round covers a key expiring between SETNX and GET
	for i := 0; i < 2; i++ {
		ok, err := rc.SetNX(ctx, dedupKeyPrefix+key, value, ttl).Result()
		if err != nil {
			slog.Error("Failed to claim dedup key", "key", key, "error", err)
			return false, "", err
		}
		if ok {
			return true, "", nil
		}

		holder, err := rc.Get(ctx, dedupKeyPrefix+key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			slog.Error("Failed to read dedup key", "key", key, "error", err)
			return false, "", err
		}
		return false, holder, nil
	}
	return false, "", nil
}

func (r *RedisService) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.GetClient().Set(ctx, dedupKeyPrefix+key, value, ttl).Err(); err != nil {
		slog.Error("Failed to set dedup key", "key", key, "error", err)
		return err
	}
	return nil
}

// =============================================================================
// PubSub Operations
// =============================================================================

func (r *RedisService) PublishRoomEvent(ctx context.Context, roomID string, event interface{}) error {
	return r.publish(ctx, RoomChannelPrefix+roomID, event)
}

func (r *RedisService) PublishConnEvent(ctx context.Context, connID string, event interface{}) error {
	return r.publish(ctx, ConnChannelPrefix+connID, event)
}

func (r *RedisService) PublishBroadcast(ctx context.Context, event interface{}) error {
	return r.publish(ctx, BroadcastChannel, event)
}

func (r *RedisService) publish(ctx context.Context, channel string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = r.client.GetClient().Publish(ctx, channel, data).Err()
	if err != nil {
		slog.Error("Failed to publish event", "channel", channel, "error", err)
		return err
	}

	slog.Debug("Published event", "channel", channel)
	return nil
}

func (r *RedisService) PSubscribe(ctx context.Context, patterns ...string) *redis.PubSub {
	pubsub := r.client.GetClient().PSubscribe(ctx, patterns...)
	slog.Debug("Pattern subscribed to channels", "patterns", patterns)
	return pubsub
}

// =============================================================================
// Rate Limiting
// =============================================================================

func (r *RedisService) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-window).UnixNano()

	pipe := r.client.GetClient().Pipeline()

	// Remove old entries
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))

	// Count current entries
	pipe.ZCard(ctx, key)

	// Add current request
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})

	// Set expiration
	pipe.Expire(ctx, key, window)

	results, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	count := results[1].(*redis.IntCmd).Val()

	return count < int64(limit), nil
}
