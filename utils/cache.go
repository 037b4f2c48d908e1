// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"servicehub/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// EventsClient is the Redis client used for rating event fan-out.
// It stays nil when REDIS_ADDR is not configured.
var EventsClient *redis.Client

// InitRedis connects the events client. A failed ping is logged and the
// client is dropped so that the API keeps serving without events.
func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Info("REDIS_ADDR not set, rating events disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisEventsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Failed to connect to Redis (events), rating events disabled", zap.Error(err))
		_ = client.Close()
		return
	}
	EventsClient = client
}

// GetEventsClient returns the events client, or nil when events are disabled.
func GetEventsClient() *redis.Client {
	return EventsClient
}

// CloseRedis closes the events client if it was opened.
func CloseRedis() error {
	if EventsClient == nil {
		return nil
	}
	return EventsClient.Close()
}
