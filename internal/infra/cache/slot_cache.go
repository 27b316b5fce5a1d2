package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"salon-booking-api/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SlotCache is a read-through cache over the booked-slots query. Entries are
// short-lived and invalidated on every booking write, so a stale read can
// only show a slot as free for at most the TTL; the database unique index
// still rejects the double-book.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func NewSlotCache(client *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{client: client, ttl: ttl}
}

func slotKey(artistID *uuid.UUID, day string) string {
	if artistID == nil {
		return "slots:all:" + day
	}
	return "slots:" + artistID.String() + ":" + day
}

// Get returns the cached slot labels and whether the key was present.
// Cache failures are logged and reported as a miss.
func (c *SlotCache) Get(ctx context.Context, artistID *uuid.UUID, day string) ([]string, bool) {
	raw, err := c.client.Get(ctx, slotKey(artistID, day)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("slot cache read failed", "error", err)
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		slog.Warn("slot cache entry corrupt", "error", err)
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, artistID *uuid.UUID, day string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotKey(artistID, day), raw, c.ttl).Err(); err != nil {
		slog.Warn("slot cache write failed", "error", err)
	}
}

// Invalidate drops both the per-artist and the all-artists entry for a day.
func (c *SlotCache) Invalidate(ctx context.Context, artistID uuid.UUID, day string) {
	keys := []string{slotKey(&artistID, day), slotKey(nil, day)}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("slot cache invalidation failed", "error", err)
	}
}
