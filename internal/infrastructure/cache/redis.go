package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/metrics"
)

const (
	// videoCacheKeyPrefix is the prefix for video cache keys in Redis.
	videoCacheKeyPrefix = "openveo:video:"
)

// videoJSON is the JSON representation of a Video for caching.
type videoJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	State     int    `json:"state"`
	Thumbnail string `json:"thumbnail"`
	Date      int64  `json:"date"`
}

// RedisVideoCache implements VideoCache using Redis as the backing store.
type RedisVideoCache struct {
	client redis.Cmdable
}

var _ VideoCache = (*RedisVideoCache)(nil)

// NewRedisVideoCache creates a new Redis-backed video cache.
func NewRedisVideoCache(client redis.Cmdable) *RedisVideoCache {
	return &RedisVideoCache{
		client: client,
	}
}

// Get retrieves a video from Redis cache.
// Returns nil, nil on cache miss.
func (c *RedisVideoCache) Get(ctx context.Context, videoID string) (*model.Video, error) {
	data, err := c.client.Get(ctx, buildKey(videoID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			record(metrics.CacheOpGet, metrics.CacheStatusMiss)
			return nil, nil
		}
		record(metrics.CacheOpGet, metrics.StatusError)
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var v videoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		record(metrics.CacheOpGet, metrics.StatusError)
		return nil, fmt.Errorf("deserialize video: %w", err)
	}

	record(metrics.CacheOpGet, metrics.CacheStatusHit)
	return &model.Video{
		ID:        v.ID,
		Title:     v.Title,
		State:     model.State(v.State),
		Thumbnail: v.Thumbnail,
		Date:      v.Date,
	}, nil
}

// Set stores a video in Redis cache with the specified TTL.
func (c *RedisVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	data, err := json.Marshal(videoJSON{
		ID:        video.ID,
		Title:     video.Title,
		State:     int(video.State),
		Thumbnail: video.Thumbnail,
		Date:      video.Date,
	})
	if err != nil {
		return fmt.Errorf("serialize video: %w", err)
	}

	if err := c.client.Set(ctx, buildKey(video.ID), data, ttl).Err(); err != nil {
		record(metrics.CacheOpSet, metrics.StatusError)
		return fmt.Errorf("redis set: %w", err)
	}

	record(metrics.CacheOpSet, metrics.StatusSuccess)
	return nil
}

// Delete removes a video from Redis cache.
func (c *RedisVideoCache) Delete(ctx context.Context, videoID string) error {
	if err := c.client.Del(ctx, buildKey(videoID)).Err(); err != nil {
		record(metrics.CacheOpDelete, metrics.StatusError)
		return fmt.Errorf("redis del: %w", err)
	}

	record(metrics.CacheOpDelete, metrics.StatusSuccess)
	return nil
}

func buildKey(videoID string) string {
	return videoCacheKeyPrefix + videoID
}

func record(operation, status string) {
	metrics.CacheOperationsTotal.WithLabelValues(operation, status, metrics.CacheTypeRedis).Inc()
}
