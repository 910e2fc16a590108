package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hszk-dev/openveo-repository/internal/domain/model"
	"github.com/hszk-dev/openveo-repository/internal/domain/repository"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/cache"
	"github.com/hszk-dev/openveo-repository/internal/infrastructure/metrics"
)

// CachedCatalogConfig holds configuration for the cached catalogue.
type CachedCatalogConfig struct {
	// CacheTTL is the TTL for cached video entities.
	CacheTTL time.Duration
}

// DefaultCachedCatalogConfig returns the default configuration.
func DefaultCachedCatalogConfig() CachedCatalogConfig {
	return CachedCatalogConfig{
		CacheTTL: time.Minute,
	}
}

// cachedCatalog wraps a VideoCatalog with caching capabilities.
// Only published videos are cached, errors never are.
type cachedCatalog struct {
	delegate repository.VideoCatalog
	cache    cache.VideoCache
	sfGroup  singleflight.Group

	cacheTTL time.Duration
}

// NewCachedCatalog creates a VideoCatalog wrapping the provided one.
func NewCachedCatalog(
	delegate repository.VideoCatalog,
	videoCache cache.VideoCache,
	cfg CachedCatalogConfig,
) repository.VideoCatalog {
	return &cachedCatalog{
		delegate: delegate,
		cache:    videoCache,
		cacheTTL: cfg.CacheTTL,
	}
}

// GetVideo retrieves a video with caching.
// Uses singleflight so concurrent lookups of the same id share one request.
// The shared request outlives a cancelled caller and is bounded by the
// delegate's own timeout; only the cancelled caller gives up.
func (c *cachedCatalog) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	sharedCtx := context.WithoutCancel(ctx)
	ch := c.sfGroup.DoChan(id, func() (any, error) {
		return c.getVideoWithCache(sharedCtx, id)
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", repository.ErrConnectionFailed, ctx.Err())
	case result = <-ch:
	}

	if result.Shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if result.Err != nil {
		return nil, result.Err
	}

	video, _ := result.Val.(*model.Video)
	return video, nil
}

// getVideoWithCache implements the cache-aside pattern.
func (c *cachedCatalog) getVideoWithCache(ctx context.Context, id string) (*model.Video, error) {
	video, err := c.cache.Get(ctx, id)
	if err != nil {
		slog.Warn("cache get failed, falling back to web service",
			"video_id", id,
			"error", err,
		)
	}

	if video.IsPublished() {
		return video, nil
	}
	if video != nil {
		c.evict(ctx, id)
	}

	video, err = c.delegate.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished() {
		return video, nil
	}

	if err := c.cache.Set(ctx, video, c.cacheTTL); err != nil {
		slog.Warn("failed to cache video",
			"video_id", id,
			"error", err,
		)
	}

	return video, nil
}

// evict drops an entry that must not be served from cache.
func (c *cachedCatalog) evict(ctx context.Context, id string) {
	if err := c.cache.Delete(ctx, id); err != nil {
		slog.Warn("failed to evict video",
			"video_id", id,
			"error", err,
		)
	}
}
