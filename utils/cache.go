package utils

import (
	"context"
	"time"

	"silesiagrand/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionCacheClient backs the concierge transcript store. It stays nil when no Redis
// address is configured.
var SessionCacheClient *redis.Client

// InitSessionCache connects to Redis if REDIS_ADDR is set. A failed ping is logged and
// leaves the service running on in-memory sessions.
func InitSessionCache() *redis.Client {
	if config.AppConfig.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis (sessions) unreachable, keeping sessions in memory", zap.Error(err))
		_ = client.Close()
		return nil
	}
	SessionCacheClient = client
	return client
}

// GetSessionCacheClient returns the session cache client, connecting on first use.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		return InitSessionCache()
	}
	return SessionCacheClient
}
