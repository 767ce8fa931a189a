package store

import (
	"context"
	"time"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Warsame-Adam/skystream-api/domain"
)

// Cached session entries live as long as the tokens they mirror.
const sessionTTL = 24 * time.Hour

type TokenRedisCache struct {
	client *redis.Client
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewTokenRedisCache(client *redis.Client, tracer trace.Tracer, logger *logrus.Logger) domain.TokenCache {
	return &TokenRedisCache{
		client: client,
		tracer: tracer,
		logger: logger,
	}
}

func (c *TokenRedisCache) PostCacheData(ctx context.Context, key string, value string) error {
	ctx, span := c.tracer.Start(ctx, "TokenRedisCache.PostCacheData")
	defer span.End()

	result := c.client.Set(key, value, sessionTTL)
	if result.Err() != nil {
		span.SetStatus(codes.Error, "Error posting cached value")
		c.logger.Errorf("redis set error: %s", result.Err())
		return result.Err()
	}

	return nil
}

func (c *TokenRedisCache) GetCachedValue(ctx context.Context, key string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "TokenRedisCache.GetCachedValue")
	defer span.End()

	result := c.client.Get(key)
	token, err := result.Result()
	if err != nil {
		span.SetStatus(codes.Error, "Error getting cached value")
		c.logger.Errorln(err)
		return "", err
	}
	return token, nil
}

func (c *TokenRedisCache) DelCachedValue(ctx context.Context, key string) error {
	ctx, span := c.tracer.Start(ctx, "TokenRedisCache.DelCachedValue")
	defer span.End()

	result := c.client.Del(key)
	if result.Err() != nil {
		span.SetStatus(codes.Error, "Error deleting cached value")
		c.logger.Errorln(result.Err())
		return result.Err()
	}

	return nil
}
