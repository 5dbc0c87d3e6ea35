package store

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/programguide/pkg/programguide"
)

func exerciseCache(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte(`{"a":1}`), time.Minute))
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(got))

	require.NoError(t, c.Set(ctx, "k", []byte(`{"a":2}`), time.Minute))
	got, _, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got))

	assert.ErrorIs(t, c.Set(ctx, "k", []byte("x"), 0), ErrInvalidTTL)
}

func TestBadger_InMemory(t *testing.T) {
	b, err := OpenBadger("", nil)
	require.NoError(t, err)
	defer b.Close()

	exerciseCache(t, b)
}

func TestBadger_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()

	b, err := OpenBadger(dir, nil)
	require.NoError(t, err)
	require.NoError(t, b.Set(context.Background(), "k", []byte("v"), time.Hour))
	require.NoError(t, b.Close())

	b, err = OpenBadger(dir, nil)
	require.NoError(t, err)
	defer b.Close()

	got, ok, err := b.Get(context.Background(), "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", string(got))
}

func TestRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	r, err := ConnectRedis(context.Background(), url, nil)
	require.NoError(t, err)
	defer r.Close()

	exerciseCache(t, r)
}

func TestConnectRedis_BadURL(t *testing.T) {
	_, err := ConnectRedis(context.Background(), "http://not-redis", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid redis url")
}

func TestKey_HidesURL(t *testing.T) {
	raw := "http://api.nhk.or.jp/v1/pg/now/130/g1.json?key=secret"
	key := Key(raw)

	assert.True(t, strings.HasPrefix(key, "pg:"))
	assert.NotContains(t, key, "secret")
	assert.Equal(t, key, Key(raw))
	assert.NotEqual(t, key, Key(raw+"x"))
}

// mapCache is an in-process Cache with switchable failures.
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}}
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[key] = value
	return nil
}

func (m *mapCache) Close() error { return nil }

type countingGetter struct {
	calls int
	body  string
	err   error
}

func (c *countingGetter) Get(context.Context, string) ([]byte, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []byte(c.body), nil
}

func TestCachingGetter_HitAfterMiss(t *testing.T) {
	next := &countingGetter{body: `{"list":{}}`}
	g := NewCachingGetter(next, newMapCache(), time.Minute, nil)
	ctx := context.Background()

	for range 3 {
		body, err := g.Get(ctx, "http://h/a.json?key=k")
		require.NoError(t, err)
		assert.Equal(t, `{"list":{}}`, string(body))
	}
	assert.Equal(t, 1, next.calls)

	_, err := g.Get(ctx, "http://h/b.json?key=k")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachingGetter_ErrorsAreNotCached(t *testing.T) {
	next := &countingGetter{err: &programguide.StatusError{StatusCode: 404, Status: "404 Not Found"}}
	cache := newMapCache()
	g := NewCachingGetter(next, cache, time.Minute, nil)

	for range 2 {
		_, err := g.Get(context.Background(), "http://h/a.json")
		assert.ErrorIs(t, err, programguide.ErrNotFound)
	}
	assert.Equal(t, 2, next.calls)
	assert.Empty(t, cache.entries)
}

func TestCachingGetter_CacheFailuresFallThrough(t *testing.T) {
	next := &countingGetter{body: "{}"}
	cache := newMapCache()
	cache.getErr = errors.New("read down")
	cache.setErr = errors.New("write down")
	g := NewCachingGetter(next, cache, time.Minute, nil)

	body, err := g.Get(context.Background(), "http://h/a.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
	assert.Equal(t, 1, next.calls)
}

func TestCachingGetter_WithClient(t *testing.T) {
	next := &countingGetter{body: `{"nowonair_list":{}}`}
	client := programguide.NewClient("k", programguide.WithGetter(NewCachingGetter(next, newMapCache(), time.Minute, nil)))

	for range 2 {
		out, err := client.NowPlaying(context.Background(), "Tokyo", "g1")
		require.NoError(t, err)
		assert.Contains(t, out, "nowonair_list")
	}
	assert.Equal(t, 1, next.calls)
}
