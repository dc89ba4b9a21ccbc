package adapters

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"orders-retriever/internal/core/cache"
	"orders-retriever/internal/core/logger"
	"orders-retriever/internal/features/rates/domain"
	"orders-retriever/internal/features/rates/ports"

	"go.uber.org/zap"
)

// CachedRepository memoizes rate lookups from an inner repository in a cache.
// Only successful lookups are cached; a missing (date, currency) pair is
// never cached, so a table refreshed behind the inner repository becomes
// visible on the next lookup.
type CachedRepository struct {
	inner ports.Repository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository creates a CachedRepository wrapping inner with the
// given cache and entry TTL.
func NewCachedRepository(inner ports.Repository, c cache.Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// Rate implements ports.Repository.
func (r *CachedRepository) Rate(ctx context.Context, date, currency string) (float64, error) {
	key := rateCacheKey(date, currency)

	if data, err := r.cache.Get(ctx, key); err == nil {
		if rate, parseErr := strconv.ParseFloat(string(data), 64); parseErr == nil {
			return rate, nil
		}
		// A corrupt entry is dropped and re-fetched from the inner repository.
		if err := r.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Failed to drop corrupt rate cache entry",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	rate, err := r.inner.Rate(ctx, date, currency)
	if err != nil {
		var missing *domain.MissingRateError
		if !errors.As(err, &missing) {
			return 0, fmt.Errorf("rate lookup failed: %w", err)
		}
		return 0, err
	}

	value := strconv.FormatFloat(rate, 'g', -1, 64)
	if err := r.cache.Set(ctx, key, []byte(value), r.ttl); err != nil {
		// Caching is best effort; the lookup itself succeeded.
		logger.Get().Warn("Failed to cache rate",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	return rate, nil
}

// rateCacheKey builds the cache key for one (date, currency) pair.
func rateCacheKey(date, currency string) string {
	return fmt.Sprintf("rates:%s:%s", date, currency)
}
