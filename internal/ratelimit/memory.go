package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter - скользящее окно в памяти процесса. Подходит для одного экземпляра
// сервиса и для разработки без Redis.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu        sync.Mutex
	hits      map[string][]time.Time
	lastSweep time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit < 1 {
		limit = 1
	}
	return &MemoryLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (*Result, error) {
	now := l.now()
	windowStart := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.hits[key]
	i := 0
	for i < len(hits) && !hits[i].After(windowStart) {
		i++
	}
	hits = hits[i:]

	if len(hits) >= l.limit {
		l.hits[key] = hits
		return &Result{
			Allowed: false,
			ResetAt: hits[0].Add(l.window),
			Limit:   l.limit,
		}, nil
	}

	hits = append(hits, now)
	l.hits[key] = hits
	if now.Sub(l.lastSweep) >= l.window {
		l.evict(windowStart)
		l.lastSweep = now
	}

	return &Result{
		Allowed:   true,
		Remaining: l.limit - len(hits),
		ResetAt:   now.Add(l.window),
		Limit:     l.limit,
	}, nil
}

// evict удаляет ключи, у которых не осталось отметок в окне.
// Вызывается не чаще раза за окно.
func (l *MemoryLimiter) evict(windowStart time.Time) {
	for key, hits := range l.hits {
		if len(hits) == 0 || !hits[len(hits)-1].After(windowStart) {
			delete(l.hits, key)
		}
	}
}
