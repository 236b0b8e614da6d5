// Package cache содержит кэш с инвалидацией по тегу и способы сбросить
// внешние кэши фронтенда.
package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Revalidator сбрасывает все данные, помеченные тегом
type Revalidator interface {
	RevalidateTag(ctx context.Context, tag string) error
}

type entry[T any] struct {
	value      T
	expiresAt  time.Time
	generation uint64
}

// TagCache - кэш в памяти процесса. Значения группируются по тегам;
// RevalidateTag сбрасывает тег целиком. Одновременные промахи по одному ключу
// схлопываются в одну загрузку.
type TagCache[T any] struct {
	ttl time.Duration
	now func() time.Time

	mu          sync.RWMutex
	entries     map[string]entry[T]
	generations map[string]uint64

	group singleflight.Group
}

// NewTagCache создает кэш. ttl <= 0 означает хранение до инвалидации.
func NewTagCache[T any](ttl time.Duration) *TagCache[T] {
	return &TagCache[T]{
		ttl:         ttl,
		now:         time.Now,
		entries:     make(map[string]entry[T]),
		generations: make(map[string]uint64),
	}
}

// GetOrLoad возвращает значение из кэша или загружает его через load.
// Второе значение сообщает о попадании в кэш.
func (c *TagCache[T]) GetOrLoad(ctx context.Context, tag, key string, load func(context.Context) (T, error)) (T, bool, error) {
	cacheKey := tag + "/" + key

	c.mu.RLock()
	generation := c.generations[tag]
	e, ok := c.entries[cacheKey]
	c.mu.RUnlock()

	if ok && e.generation == generation && (e.expiresAt.IsZero() || c.now().Before(e.expiresAt)) {
		return e.value, true, nil
	}

	flightKey := fmt.Sprintf("%s#%d", cacheKey, generation)
	val, err, _ := c.group.Do(flightKey, func() (any, error) {
		value, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(tag, cacheKey, generation, value)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	return val.(T), false, nil
}

// store сохраняет значение, только если тег не сбросили во время загрузки
func (c *TagCache[T]) store(tag, cacheKey string, generation uint64, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generations[tag] != generation {
		return
	}

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}
	c.entries[cacheKey] = entry[T]{value: value, expiresAt: expiresAt, generation: generation}
}

func (c *TagCache[T]) RevalidateTag(_ context.Context, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[tag]++
	prefix := tag + "/"
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}

	return nil
}
