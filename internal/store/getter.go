package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/listenupapp/programguide/pkg/programguide"
)

// CachingGetter serves repeated GETs from a Cache. Only successful bodies
// are stored; cache failures fall through to the wrapped getter.
type CachingGetter struct {
	next   programguide.Getter
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

var _ programguide.Getter = (*CachingGetter)(nil)

// NewCachingGetter wraps next. ttl must be positive.
func NewCachingGetter(next programguide.Getter, cache Cache, ttl time.Duration, logger *slog.Logger) *CachingGetter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachingGetter{next: next, cache: cache, ttl: ttl, logger: logger}
}

// Get implements programguide.Getter.
func (g *CachingGetter) Get(ctx context.Context, rawURL string) ([]byte, error) {
	key := Key(rawURL)

	body, ok, err := g.cache.Get(ctx, key)
	switch {
	case err != nil:
		g.logger.Warn("response cache read failed", "error", err)
	case ok:
		g.logger.Debug("response cache hit", "key", key)
		return body, nil
	}

	body, err = g.next.Get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := g.cache.Set(ctx, key, body, g.ttl); err != nil {
		g.logger.Warn("response cache write failed", "error", err)
	}
	return body, nil
}
