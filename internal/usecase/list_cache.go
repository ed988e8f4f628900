package usecase

import (
	"context"

	"hospital-management-api/internal/service"

	"github.com/sirupsen/logrus"
)

// cachedList serves key from cache, falling back to load and storing its
// result under the generation read before loading. Cache failures are
// logged and otherwise ignored.
func cachedList[T any](ctx context.Context, cache service.ListCache, log *logrus.Logger, key string, load func() (*T, error)) (*T, error) {
	generation, err := cache.Generation(ctx)
	if err != nil {
		log.Warnf("Failed to read list cache generation: %+v", err)
		return load()
	}

	var cached T
	hit, err := cache.Get(ctx, generation, key, &cached)
	if err != nil {
		log.Warnf("Failed to read list cache %s: %+v", key, err)
	} else if hit {
		return &cached, nil
	}

	result, err := load()
	if err != nil {
		return nil, err
	}

	if err := cache.Set(ctx, generation, key, result); err != nil {
		log.Warnf("Failed to write list cache %s: %+v", key, err)
	}
	return result, nil
}

func invalidateLists(ctx context.Context, cache service.ListCache, log *logrus.Logger) {
	if err := cache.Invalidate(ctx); err != nil {
		log.Warnf("Failed to invalidate list cache: %+v", err)
	}
}
