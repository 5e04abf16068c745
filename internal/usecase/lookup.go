package usecase

import (
	"context"
	"encoding/json"
	"import_admin/internal/infrastructure/metrics"
	"import_admin/internal/usecase/interfaces"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	LookupCarsKey    = "lookup:cars"
	LookupClientsKey = "lookup:clients"
)

// lookup is a read-through cache over one option list. A nil cache or a cache
// failure falls back to fetch.
type lookup[T any] struct {
	cache interfaces.ILookupCache
	key   string
	ttl   time.Duration
	log   logrus.FieldLogger
}

func (l lookup[T]) load(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if l.cache == nil {
		return fetch(ctx)
	}

	data, found, err := l.cache.Get(ctx, l.key)
	switch {
	case err != nil:
		metrics.LookupCacheTotal.WithLabelValues(l.key, "error").Inc()
		l.log.WithField("key", l.key).WithError(err).Warn("[lookup][usecase] cache_get_failed")
	case found:
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			metrics.LookupCacheTotal.WithLabelValues(l.key, "hit").Inc()
			return items, nil
		}
		metrics.LookupCacheTotal.WithLabelValues(l.key, "error").Inc()
	default:
		metrics.LookupCacheTotal.WithLabelValues(l.key, "miss").Inc()
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(items); err == nil {
		if err := l.cache.Set(ctx, l.key, data, l.ttl); err != nil {
			l.log.WithField("key", l.key).WithError(err).Warn("[lookup][usecase] cache_set_failed")
		}
	}
	return items, nil
}

func (l lookup[T]) invalidate(ctx context.Context) {
	if l.cache == nil {
		return
	}
	if err := l.cache.Delete(ctx, l.key); err != nil {
		l.log.WithField("key", l.key).WithError(err).Warn("[lookup][usecase] cache_invalidate_failed")
	}
}
