package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/memories-timeline/memories-backend/pkg/api"
	"github.com/memories-timeline/memories-backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

const MediaKey = "memories:all-media"

const defaultExpiration = time.Minute

type redisCache struct {
	client     *redis.Client
	expiration time.Duration
}

func NewRedisCache(cfg config.Redis) *redisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = defaultExpiration
	}
	return &redisCache{
		client:     client,
		expiration: expiration,
	}
}

// GetMedia returns the cached global media listing
func (c *redisCache) GetMedia(ctx context.Context) (*api.MediaCollectionResponse, error) {
	buf, err := c.get(ctx, MediaKey)
	if err != nil {
		return nil, fmt.Errorf("redis get error: %w", err)
	}

	var media api.MediaCollectionResponse
	err = json.Unmarshal(buf, &media)
	if err != nil {
		return nil, fmt.Errorf("redis unmarshal error: %w", err)
	}
	return &media, nil
}

func (c *redisCache) SetMedia(ctx context.Context, response api.MediaCollectionResponse) error {
	buf, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("unable to marshal for Redis cache: %w", err)
	}

	if err = c.client.Set(ctx, MediaKey, string(buf), c.expiration).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// InvalidateMedia drops the media listing after memories or their assets change
func (c *redisCache) InvalidateMedia(ctx context.Context) error {
	if err := c.client.Del(ctx, MediaKey).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

func (c *redisCache) get(ctx context.Context, key string) ([]byte, error) {
	cmd := c.client.Get(ctx, key)
	if errors.Is(cmd.Err(), redis.Nil) {
		return nil, ErrNotFound
	} else if cmd.Err() != nil {
		return nil, fmt.Errorf("redis error: %w", cmd.Err())
	}

	buf, err := cmd.Bytes()
	if err != nil {
		return nil, fmt.Errorf("redis bytes conversion error: %w", err)
	}
	return buf, err
}
