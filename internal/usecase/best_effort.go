package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// backgroundTimeout ограничивает задачи, отвязанные от запроса
const backgroundTimeout = 10 * time.Second

// runBestEffort выполняет некритичный эффект синхронно. Ошибка логируется
// и не возвращается вызывающему.
func (u *LinkUsecase) runBestEffort(ctx context.Context, name string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		u.logger.Warn("best-effort task failed",
			zap.String("task", name),
			zap.Error(err),
		)
	}
}

// goBestEffort запускает некритичный эффект в фоне. Задача не отменяется вместе
// с запросом и ограничена собственным таймаутом.
func (u *LinkUsecase) goBestEffort(ctx context.Context, name string, fn func(context.Context) error) {
	taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), backgroundTimeout)

	u.background.Add(1)
	go func() {
		defer u.background.Done()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				u.logger.Error("best-effort task panicked",
					zap.String("task", name),
					zap.Any("panic", r),
				)
			}
		}()

		u.runBestEffort(taskCtx, name, fn)
	}()
}
