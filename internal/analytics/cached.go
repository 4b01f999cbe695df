package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"insightchat/internal/cache"
	"insightchat/internal/models"
	"insightchat/internal/query"
)

// CachedReader decorates a Reader with a short-TTL cache keyed by period
// plus call signature. The pipeline behaves identically with or without
// it; wiring it in is a deployment choice.
type CachedReader struct {
	inner Reader
	cache *cache.Cache
	ttl   time.Duration
}

// WithCache wraps a reader in a caching layer.
func WithCache(inner Reader, c *cache.Cache, ttl time.Duration) *CachedReader {
	return &CachedReader{inner: inner, cache: c, ttl: ttl}
}

func cacheKey(call string, p query.Period, scope string, extra ...string) string {
	parts := append([]string{call, p.Start.Format(dateFormat), p.End.Format(dateFormat), scope}, extra...)
	return strings.Join(parts, "|")
}

// Overview implements Reader.
func (r *CachedReader) Overview(ctx context.Context, p query.Period, scope string) (models.Overview, error) {
	key := cacheKey("overview", p, scope)
	if cached, found := r.cache.Get(key); found {
		if overview, ok := cached.(models.Overview); ok {
			return overview, nil
		}
	}
	overview, err := r.inner.Overview(ctx, p, scope)
	if err != nil {
		return models.Overview{}, err
	}
	r.cache.Set(key, overview, r.ttl)
	return overview, nil
}

// DimensionRows implements Reader.
func (r *CachedReader) DimensionRows(ctx context.Context, p query.Period, d query.Dimension, scope string) ([]models.DimensionRow, error) {
	key := cacheKey("dimension", p, scope, d.Key())
	if cached, found := r.cache.Get(key); found {
		if rows, ok := cached.([]models.DimensionRow); ok {
			return rows, nil
		}
	}
	rows, err := r.inner.DimensionRows(ctx, p, d, scope)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, rows, r.ttl)
	return rows, nil
}

// EventCounts implements Reader.
func (r *CachedReader) EventCounts(ctx context.Context, p query.Period, events []string, scope string) (map[string]float64, error) {
	sorted := append([]string(nil), events...)
	sort.Strings(sorted)
	key := cacheKey("events", p, scope, fmt.Sprintf("%v", sorted))
	if cached, found := r.cache.Get(key); found {
		if counts, ok := cached.(map[string]float64); ok {
			return counts, nil
		}
	}
	counts, err := r.inner.EventCounts(ctx, p, events, scope)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, counts, r.ttl)
	return counts, nil
}

// DailySeries implements Reader.
func (r *CachedReader) DailySeries(ctx context.Context, p query.Period, scope string) ([]models.DailyPoint, error) {
	key := cacheKey("daily", p, scope)
	if cached, found := r.cache.Get(key); found {
		if points, ok := cached.([]models.DailyPoint); ok {
			return points, nil
		}
	}
	points, err := r.inner.DailySeries(ctx, p, scope)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, points, r.ttl)
	return points, nil
}
