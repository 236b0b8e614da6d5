// Package ratelimit ограничивает частоту запросов по ключу (обычно IP клиента)
// скользящим окном.
package ratelimit

import (
	"context"
	"time"
)

// Result - итог проверки лимита
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
	Limit     int
}

// Limiter проверяет, укладывается ли очередной запрос с ключом key в лимит
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}
