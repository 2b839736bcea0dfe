// Package handoff provides the Redis mailbox backend.
// The slot survives page navigations but is not authoritative storage:
// the key carries a server-side TTL so abandoned payloads expire on
// their own, and GETDEL gives read-once-and-clear in a single round
// trip.
package handoff

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"quotecalc/core/handoff"
	qerrors "quotecalc/internal/errors"
)

// RedisMailbox is a Redis-backed single-slot mailbox
type RedisMailbox struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisMailbox creates a mailbox on one Redis key
func NewRedisMailbox(addr, key string, ttl time.Duration) *RedisMailbox {
	return &RedisMailbox{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    key,
		ttl:    ttl,
	}
}

// Put stores the payload, overwriting any pending one. The key TTL
// doubles as the staleness bound.
func (r *RedisMailbox) Put(ctx context.Context, p handoff.Payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return qerrors.Internal("failed to encode handoff payload", err)
	}
	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return qerrors.Storage("failed to write handoff payload", err)
	}
	return nil
}

// Take reads and clears the slot in one round trip
func (r *RedisMailbox) Take(ctx context.Context) (handoff.Payload, bool, error) {
	val, err := r.client.GetDel(ctx, r.key).Result()
	if err == redis.Nil {
		return handoff.Payload{}, false, nil
	}
	if err != nil {
		return handoff.Payload{}, false, qerrors.Storage("failed to read handoff payload", err)
	}

	var p handoff.Payload
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		// A corrupt slot is treated as empty; the contact flow falls back
		// to a blank message field.
		return handoff.Payload{}, false, nil
	}
	if r.ttl > 0 && time.Since(p.CreatedAt) > r.ttl {
		return handoff.Payload{}, false, nil
	}
	return p, true, nil
}

// Close releases the Redis connection
func (r *RedisMailbox) Close() error {
	return r.client.Close()
}
