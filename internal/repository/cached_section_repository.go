package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// sectionLister is the subset of SectionRepository the cache decorator
// wraps, narrowed so tests can substitute a fake without a real database.
type sectionLister interface {
	ListByCourses(ctx context.Context, term string, courses []string) (map[string][]SectionWithMeetings, error)
}

// cacheMetrics is the narrow slice of MetricsService the decorator reports
// to, kept as a local interface so this package does not depend on the
// service package.
type cacheMetrics interface {
	RecordCacheOperation(hit bool, duration time.Duration)
	ObserveCacheWrite(duration time.Duration)
}

// CachedSectionRepository is a read-through Redis cache in front of a
// section repository. A term's full catalog response for a given course
// set is cached as one JSON blob, keyed by term and the sorted course list.
type CachedSectionRepository struct {
	inner   sectionLister
	client  *redis.Client
	ttl     time.Duration
	logger  *zap.Logger
	metrics cacheMetrics
}

// NewCachedSectionRepository wraps a section repository with a Redis
// read-through cache.
func NewCachedSectionRepository(inner sectionLister, client *redis.Client, ttl time.Duration, logger *zap.Logger, metrics cacheMetrics) *CachedSectionRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedSectionRepository{inner: inner, client: client, ttl: ttl, logger: logger, metrics: metrics}
}

// ListByCourses returns the cached catalog response for the term/course set
// if present, otherwise loads from the wrapped repository and populates the
// cache before returning.
func (r *CachedSectionRepository) ListByCourses(ctx context.Context, term string, courses []string) (map[string][]SectionWithMeetings, error) {
	key := cacheKey(term, courses)

	if r.client != nil {
		start := time.Now()
		raw, err := r.client.Get(ctx, key).Bytes()
		if r.metrics != nil {
			r.metrics.RecordCacheOperation(err == nil, time.Since(start))
		}
		if err == nil {
			var cached map[string][]SectionWithMeetings
			if unmarshalErr := json.Unmarshal(raw, &cached); unmarshalErr == nil {
				return cached, nil
			}
			r.logger.Warn("discarding unreadable catalog cache entry", zap.String("key", key))
		} else if err != redis.Nil {
			r.logger.Warn("catalog cache lookup failed", zap.Error(err))
		}
	}

	result, err := r.inner.ListByCourses(ctx, term, courses)
	if err != nil {
		return nil, err
	}

	if r.client != nil {
		payload, marshalErr := json.Marshal(result)
		if marshalErr == nil {
			start := time.Now()
			if setErr := r.client.Set(ctx, key, payload, r.ttl).Err(); setErr != nil {
				r.logger.Warn("catalog cache write failed", zap.Error(setErr))
			}
			if r.metrics != nil {
				r.metrics.ObserveCacheWrite(time.Since(start))
			}
		}
	}

	return result, nil
}

func cacheKey(term string, courses []string) string {
	sorted := append([]string(nil), courses...)
	sort.Strings(sorted)
	return fmt.Sprintf("catalog:%s:%s", term, strings.Join(sorted, ","))
}
