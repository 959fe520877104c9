// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"shalfa/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient backs the booking and concierge session stores.
	SessionClient *redis.Client
	// PrefsClient backs the guest preference store.
	PrefsClient *redis.Client
)

// InitSessionCache initializes the Redis client for session state.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the Redis client for session state.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}

// InitPrefsCache initializes the Redis client for guest preferences.
func InitPrefsCache() {
	PrefsClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrefsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := PrefsClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Prefs): %v", err)
	}
}

// GetPrefsClient returns the Redis client for guest preferences.
func GetPrefsClient() *redis.Client {
	if PrefsClient == nil {
		InitPrefsCache()
	}
	return PrefsClient
}
