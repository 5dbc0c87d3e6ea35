package providers

import (
	"context"
	"fmt"

	"github.com/samber/do/v2"

	"github.com/listenupapp/programguide/internal/config"
	"github.com/listenupapp/programguide/internal/logger"
	"github.com/listenupapp/programguide/internal/store"
	"github.com/listenupapp/programguide/internal/store/sqlite"
	"github.com/listenupapp/programguide/pkg/programguide"
)

// CacheHandle wraps the response cache with Shutdownable. Cache is nil
// when caching is off.
type CacheHandle struct {
	store.Cache
}

// Shutdown implements do.Shutdownable.
func (h *CacheHandle) Shutdown() error {
	if h.Cache == nil {
		return nil
	}
	return h.Close()
}

// ProvideCache opens the configured response cache backend.
func ProvideCache(i do.Injector) (*CacheHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	var (
		cache store.Cache
		err   error
	)
	switch store.Backend(cfg.Cache.Backend) {
	case store.BackendBadger:
		cache, err = store.OpenBadger(cfg.Cache.Path, log.Logger)
	case store.BackendSQLite:
		cache, err = sqlite.Open(cfg.Cache.Path, log.Logger)
	case store.BackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Transport.Timeout)
		defer cancel()
		cache, err = store.ConnectRedis(ctx, cfg.Cache.RedisURL, log.Logger)
	case store.BackendNone:
		return &CacheHandle{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
	if err != nil {
		return nil, err
	}

	log.WithField("backend", cfg.Cache.Backend).Info("response cache enabled", "ttl", cfg.Cache.TTL)
	return &CacheHandle{Cache: cache}, nil
}

// upstream returns the getter the clients share: the rate-limited
// transport, behind the response cache when one is configured.
func upstream(i do.Injector) (programguide.Getter, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	transport := do.MustInvoke[*TransportHandle](i)

	cache, err := do.Invoke[*CacheHandle](i)
	if err != nil {
		return nil, err
	}
	if cache.Cache == nil || cfg.Cache.TTL <= 0 {
		return transport.HTTPGetter, nil
	}
	return store.NewCachingGetter(transport.HTTPGetter, cache.Cache, cfg.Cache.TTL, log.Logger), nil
}
