package presence

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	usersKey       = "presence:users"
	connsKey       = "presence:conns"
	aliveKeyPrefix = "presence:alive:"

	// DefaultTTL outlives two websocket ping periods.
	DefaultTTL = 2 * time.Minute
)

// addScript replaces any previous connection of the user and any previous user of the connection.
var addScript = redis.NewScript(`
local prevConn = redis.call('HGET', KEYS[1], ARGV[1])
if prevConn then
  redis.call('HDEL', KEYS[2], prevConn)
  redis.call('DEL', ARGV[4] .. prevConn)
end
local prevUser = redis.call('HGET', KEYS[2], ARGV[2])
if prevUser and prevUser ~= ARGV[1] then
  redis.call('HDEL', KEYS[1], prevUser)
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('HSET', KEYS[2], ARGV[2], ARGV[1])
redis.call('SET', ARGV[4] .. ARGV[2], ARGV[1], 'PX', ARGV[3])
return 1
`)

// refreshScript extends a live entry, or restores one that expired while no newer connection took over.
var refreshScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], ARGV[1])
if current and current ~= ARGV[2] then
  return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
redis.call('HSET', KEYS[2], ARGV[2], ARGV[1])
redis.call('SET', ARGV[4] .. ARGV[2], ARGV[1], 'PX', ARGV[3])
return 1
`)

// removeScript deletes the user entry only while it still points at this connection.
var removeScript = redis.NewScript(`
redis.call('DEL', ARGV[2] .. ARGV[1])
local userId = redis.call('HGET', KEYS[2], ARGV[1])
if not userId then
  return false
end
redis.call('HDEL', KEYS[2], ARGV[1])
if redis.call('HGET', KEYS[1], userId) == ARGV[1] then
  redis.call('HDEL', KEYS[1], userId)
end
return userId
`)

// lookupScript returns the user's connection, dropping it when its instance stopped refreshing.
var lookupScript = redis.NewScript(`
local connId = redis.call('HGET', KEYS[1], ARGV[1])
if not connId then
  return false
end
if redis.call('EXISTS', ARGV[2] .. connId) == 0 then
  redis.call('HDEL', KEYS[1], ARGV[1])
  redis.call('HDEL', KEYS[2], connId)
  return false
end
return connId
`)

// onlineScript lists users with a live connection and sweeps the rest.
var onlineScript = redis.NewScript(`
local entries = redis.call('HGETALL', KEYS[1])
local users = {}
for i = 1, #entries, 2 do
  local userId, connId = entries[i], entries[i + 1]
  if redis.call('EXISTS', ARGV[1] .. connId) == 1 then
    table.insert(users, userId)
  else
    redis.call('HDEL', KEYS[1], userId)
    redis.call('HDEL', KEYS[2], connId)
  end
end
return users
`)

// RedisRegistry shares presence between every gateway instance.
// Each connection holds a liveness key that expires unless refreshed, so entries
// left behind by a crashed instance go offline after ttl.
type RedisRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRegistry(client *redis.Client, ttl time.Duration) *RedisRegistry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisRegistry{client: client, ttl: ttl}
}

func (r *RedisRegistry) keys() []string {
	return []string{usersKey, connsKey}
}

func (r *RedisRegistry) Add(ctx context.Context, userID, connID string) error {
	err := addScript.Run(ctx, r.client, r.keys(), userID, connID, r.ttl.Milliseconds(), aliveKeyPrefix).Err()
	if err != nil {
		return fmt.Errorf("failed to add presence: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Refresh(ctx context.Context, userID, connID string) error {
	err := refreshScript.Run(ctx, r.client, r.keys(), userID, connID, r.ttl.Milliseconds(), aliveKeyPrefix).Err()
	if err != nil {
		return fmt.Errorf("failed to refresh presence: %w", err)
	}
	return nil
}

func (r *RedisRegistry) Remove(ctx context.Context, connID string) (string, error) {
	userID, err := removeScript.Run(ctx, r.client, r.keys(), connID, aliveKeyPrefix).Text()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to remove presence: %w", err)
	}
	return userID, nil
}

func (r *RedisRegistry) Lookup(ctx context.Context, userID string) (string, bool, error) {
	connID, err := lookupScript.Run(ctx, r.client, r.keys(), userID, aliveKeyPrefix).Text()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return connID, true, nil
}

func (r *RedisRegistry) Online(ctx context.Context) ([]string, error) {
	users, err := onlineScript.Run(ctx, r.client, r.keys(), aliveKeyPrefix).StringSlice()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	sort.Strings(users)
	return users, nil
}

// Reset clears all presence, used at startup of a single-instance deployment.
func (r *RedisRegistry) Reset(ctx context.Context) error {
	conns, err := r.client.HKeys(ctx, connsKey).Result()
	if err != nil {
		return err
	}
	keys := []string{usersKey, connsKey}
	for _, c := range conns {
		keys = append(keys, aliveKeyPrefix+c)
	}
	return r.client.Del(ctx, keys...).Err()
}
