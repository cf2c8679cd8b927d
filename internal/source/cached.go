package source

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

const defaultSetTimeout = 5 * time.Second

// addTTLJitter adds up to ±15s random jitter to TTL to avoid mass expiration.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 30*time.Second {
		return ttl
	}
	jitter := time.Duration(rand.Intn(30)-15) * time.Second
	return ttl + jitter
}

// FindAndCache implements read-through caching with singleflight. Concurrent
// misses on the same key share one fetch; the result is stored before it is
// returned. Cache failures are logged and treated as a miss.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", zap.String("key", key))
		return cached, nil

	case errors.Is(err, redis.Nil):
		logger.Debug("cache miss", zap.String("key", key))

	default:
		logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := sf.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}

		setCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultSetTimeout)
		defer cancel()
		if err := c.Set(setCtx, key, value, addTTLJitter(ttl)); err != nil {
			logger.Warn("failed to set cache on miss", zap.String("key", key), zap.Error(err))
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}

// Cached wraps a Source with a read-through cache of sheet names and grids.
type Cached struct {
	next   Source
	cache  Cacher
	sf     singleflight.Group
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// NewCached returns a caching Source. prefix namespaces keys per backend so
// that a spreadsheet id and a file path never collide.
func NewCached(next Source, cache Cacher, prefix string, ttl time.Duration, logger *zap.Logger) *Cached {
	if next == nil {
		panic("source cannot be nil")
	}
	if cache == nil {
		panic("cache cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cached{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		prefix: prefix,
		logger: logger.Named("source_cache"),
	}
}

func (c *Cached) SheetNames(ctx context.Context, sourceID string) ([]string, error) {
	key := fmt.Sprintf("likert:%s:sheets:%s", c.prefix, sourceID)
	return FindAndCache(ctx, c.cache, &c.sf, key, c.ttl, c.logger, func(ctx context.Context) ([]string, error) {
		return c.next.SheetNames(ctx, sourceID)
	})
}

func (c *Cached) Values(ctx context.Context, sourceID, sheet string) ([][]string, error) {
	key := fmt.Sprintf("likert:%s:values:%s:%s", c.prefix, sourceID, sheet)
	return FindAndCache(ctx, c.cache, &c.sf, key, c.ttl, c.logger, func(ctx context.Context) ([][]string, error) {
		return c.next.Values(ctx, sourceID, sheet)
	})
}
