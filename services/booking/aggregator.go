package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	trainerRepo "onboardify/database/repository/trainer"
	"onboardify/models"
	"onboardify/services/calendar"
	"onboardify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache is the short-TTL availability lookup store. Only
// CachedSlotAvailability consults it; booking confirmation always recomputes
// against the calendar, which stays the sole source of truth for conflicts.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisCache struct {
	client *redis.Client
}

// NewRedisCache wraps a redis client as an availability cache.
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Aggregator combines per-trainer calendar availability for one requested
// window across the active trainer pool.
type Aggregator struct {
	Availability *calendar.AvailabilityProvider
	TrainerRepo  trainerRepo.TrainerRepository
	Cache        Cache // optional; UI reads only
	Logger       *zap.Logger
}

// SlotAvailability reports whether at least one trainer from the (optionally
// region-filtered) pool is free for the requested window, and lists all such
// trainers. The answer is recomputed from the calendar on every call, never
// served from the cache: a minute-stale answer would let two bookings for the
// same trainer/slot both confirm. An empty filtered pool yields
// Available=false rather than an error.
func (a *Aggregator) SlotAvailability(ctx context.Context, q SlotQuery) (models.SlotAvailability, error) {
	if _, err := time.ParseInLocation(calendar.DateLayout, q.Date, time.Local); err != nil {
		return models.SlotAvailability{}, NewValidationError(fmt.Sprintf("invalid date %q", q.Date))
	}
	if q.Start >= q.End {
		return models.SlotAvailability{}, NewValidationError("slot start must be before end")
	}

	pool, err := a.TrainerRepo.GetActive()
	if err != nil {
		return models.SlotAvailability{}, fmt.Errorf("failed to load trainer pool: %w", err)
	}

	var result models.SlotAvailability
	for _, trainer := range pool {
		if !trainer.CoversRegion(q.Region) {
			continue
		}
		free, err := a.Availability.WindowFree(ctx, trainer, q.Date, q.Start, q.End)
		if err != nil {
			a.Logger.Warn("skipping trainer after availability check failure",
				zap.String("trainerId", trainer.ID), zap.Error(err))
			continue
		}
		if free {
			result.Trainers = append(result.Trainers, trainer.ID)
		}
	}
	result.Available = len(result.Trainers) > 0
	return result, nil
}

// CachedSlotAvailability serves availability browsing from the short-TTL
// cache, recomputing on a miss. A result may be up to AvailabilityCacheTTL
// stale, which is fine for a slot picker but not for confirming a booking.
func (a *Aggregator) CachedSlotAvailability(ctx context.Context, q SlotQuery) (models.SlotAvailability, error) {
	if cached, ok := a.cachedResult(ctx, q); ok {
		return cached, nil
	}
	result, err := a.SlotAvailability(ctx, q)
	if err != nil {
		return models.SlotAvailability{}, err
	}
	a.storeResult(ctx, q, result)
	return result, nil
}

func cacheKey(q SlotQuery) string {
	return fmt.Sprintf("availability:%s:%d-%d:%s", q.Date, q.Start, q.End, q.Region)
}

func (a *Aggregator) cachedResult(ctx context.Context, q SlotQuery) (models.SlotAvailability, bool) {
	if a.Cache == nil {
		return models.SlotAvailability{}, false
	}
	data, err := a.Cache.Get(ctx, cacheKey(q))
	if err != nil {
		return models.SlotAvailability{}, false
	}
	var result models.SlotAvailability
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return models.SlotAvailability{}, false
	}
	return result, true
}

func (a *Aggregator) storeResult(ctx context.Context, q SlotQuery, result models.SlotAvailability) {
	if a.Cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := a.Cache.Set(ctx, cacheKey(q), string(data), utils.AvailabilityCacheTTL); err != nil {
		a.Logger.Warn("failed to cache availability result", zap.Error(err))
	}
}
