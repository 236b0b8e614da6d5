package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock - управляемые часы для проверки окна
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newRedisLimiter(t *testing.T, limit int, window time.Duration) (*RedisLimiter, *fakeClock) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	limiter := NewRedisLimiter(client, "ratelimit:webhook:", limit, window)
	limiter.now = clock.Now

	return limiter, clock
}

func newMemoryLimiter(limit int, window time.Duration) (*MemoryLimiter, *fakeClock) {
	clock := &fakeClock{now: time.UnixMilli(1_700_000_000_000)}
	limiter := NewMemoryLimiter(limit, window)
	limiter.now = clock.Now

	return limiter, clock
}

func TestLimiters_SlidingWindow(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) (Limiter, *fakeClock)
	}{
		{
			name: "Redis",
			setup: func(t *testing.T) (Limiter, *fakeClock) {
				return newRedisLimiter(t, 10, time.Minute)
			},
		},
		{
			name: "Memory",
			setup: func(t *testing.T) (Limiter, *fakeClock) {
				return newMemoryLimiter(10, time.Minute)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			limiter, clock := tt.setup(t)

			for i := 0; i < 10; i++ {
				res, err := limiter.Allow(ctx, "203.0.113.7")
				require.NoError(t, err)
				assert.True(t, res.Allowed, "request %d", i+1)
				assert.Equal(t, 9-i, res.Remaining)
				clock.Advance(time.Second)
			}

			res, err := limiter.Allow(ctx, "203.0.113.7")
			require.NoError(t, err)
			assert.False(t, res.Allowed)
			assert.Equal(t, 10, res.Limit)

			// Другой IP не затронут
			res, err = limiter.Allow(ctx, "198.51.100.1")
			require.NoError(t, err)
			assert.True(t, res.Allowed)

			// Через минуту после первого запроса освобождается одно место
			clock.Advance(50 * time.Second)
			res, err = limiter.Allow(ctx, "203.0.113.7")
			require.NoError(t, err)
			assert.True(t, res.Allowed)

			res, err = limiter.Allow(ctx, "203.0.113.7")
			require.NoError(t, err)
			assert.False(t, res.Allowed)
		})
	}
}

func TestRedisLimiter_ResetAt(t *testing.T) {
	limiter, clock := newRedisLimiter(t, 1, time.Minute)
	ctx := context.Background()
	start := clock.Now()

	res, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	require.True(t, res.Allowed)

	clock.Advance(10 * time.Second)
	res, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, start.Add(time.Minute).UnixMilli(), res.ResetAt.UnixMilli())
}

func TestRedisLimiter_Reset(t *testing.T) {
	limiter, _ := newRedisLimiter(t, 1, time.Minute)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "ip"))

	res, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	limiter := NewRedisLimiter(client, "rl:", 10, time.Minute)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "ip")

	assert.Error(t, err)
}

func TestMemoryLimiter_EvictsIdleKeys(t *testing.T) {
	limiter, clock := newMemoryLimiter(5, time.Minute)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "a")
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)
	_, err = limiter.Allow(ctx, "b")
	require.NoError(t, err)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.hits, "a")
	assert.Contains(t, limiter.hits, "b")
}

func TestMemoryLimiter_SweepsOncePerWindow(t *testing.T) {
	limiter, clock := newMemoryLimiter(5, time.Minute)
	ctx := context.Background()
	allow := func(key string) {
		t.Helper()
		_, err := limiter.Allow(ctx, key)
		require.NoError(t, err)
	}
	keys := func() []string {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		var out []string
		for k := range limiter.hits {
			out = append(out, k)
		}
		return out
	}

	allow("warm")
	clock.Advance(50 * time.Second)
	allow("a")
	clock.Advance(50 * time.Second)
	allow("b")
	assert.ElementsMatch(t, []string{"a", "b"}, keys())

	// "a" уже вне окна, но с прошлой очистки прошло меньше окна
	clock.Advance(20 * time.Second)
	allow("c")
	assert.ElementsMatch(t, []string{"a", "b", "c"}, keys())

	clock.Advance(41 * time.Second)
	allow("d")
	assert.ElementsMatch(t, []string{"c", "d"}, keys())
}
