package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"lawflow/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
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

// SlotCacheVersion returns the current cache version for a profile. Listings
// are cached under the version current at read time; bumping the version
// orphans every cached listing for the profile at once.
func SlotCacheVersion(ctx context.Context, client *redis.Client, profileID string) int64 {
	ver, err := client.Get(ctx, slotVersionKey(profileID)).Int64()
	if err != nil {
		return 0
	}
	return ver
}

// BumpSlotCacheVersion invalidates all cached slot listings for a profile.
func BumpSlotCacheVersion(ctx context.Context, client *redis.Client, profileID string) {
	if err := client.Incr(ctx, slotVersionKey(profileID)).Err(); err != nil {
		GetLogger().Warn("failed to bump slot cache version")
	}
}

// SlotCacheKey builds the cache key for one slot listing request.
func SlotCacheKey(profileID string, ver int64, from, to string) string {
	return fmt.Sprintf("slots:%s:%d:%s:%s", profileID, ver, from, to)
}

func slotVersionKey(profileID string) string {
	return "slots:ver:" + profileID
}
