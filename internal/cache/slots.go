package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/northpeaklabs/marketing-ops/internal/models"
)

const (
	availableSlotsKey = "slots:available"
	availableSlotsTTL = time.Minute
)

// SlotCache keeps the public available-slot listing in redis. A nil
// *SlotCache is valid and means cache disabled; every method degrades to a
// miss or a no-op.
type SlotCache struct {
	rdb *redis.Client
}

// New returns nil when redisURL is empty so callers can run without redis.
func New(redisURL string) *SlotCache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("cache: invalid REDIS_URL, running without cache: %v", err)
		return nil
	}

	return &SlotCache{rdb: redis.NewClient(opts)}
}

func (c *SlotCache) GetAvailable(ctx context.Context) ([]models.ConsultationSlot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, availableSlotsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []models.ConsultationSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *SlotCache) SetAvailable(ctx context.Context, slots []models.ConsultationSlot) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, availableSlotsKey, raw, availableSlotsTTL).Err(); err != nil {
		log.Printf("cache: set available slots: %v", err)
	}
}

func (c *SlotCache) InvalidateAvailable(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, availableSlotsKey).Err(); err != nil {
		log.Printf("cache: invalidate available slots: %v", err)
	}
}
