// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"onboardify/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, used for short-lived availability
// lookups and booking idempotency keys.
var CacheClient *redis.Client

// AvailabilityCacheTTL bounds how stale a cached slot-availability answer may
// be. The calendar remains the source of truth at booking time.
const AvailabilityCacheTTL = 60 * time.Second

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
