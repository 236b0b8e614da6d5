package app

import (
	"context"
	"net/http"

	"github.com/avc-dev/linktree/internal/config"
	"github.com/avc-dev/linktree/internal/config/db"
	"github.com/avc-dev/linktree/internal/repository"
	"github.com/avc-dev/linktree/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App представляет приложение linktree
type App struct {
	config  *config.Config
	logger  *zap.Logger
	router  http.Handler
	usecase *usecase.LinkUsecase
	repo    *repository.Repository
	redis   *redis.Client
	dbPool  db.Database
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: logger,
	}

	if err := app.initDependencies(context.Background()); err != nil {
		app.Close()
		_ = logger.Sync()
		return nil, err
	}

	return app, nil
}

// Run запускает приложение и блокируется до остановки. Возвращает код выхода процесса.
func Run() (int, error) {
	app, err := New()
	if err != nil {
		return 1, err
	}
	defer func() { _ = app.logger.Sync() }()

	return app.start(), nil
}

// Close освобождает хранилище, Redis и пул подключений к БД
func (a *App) Close() {
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.logger.Warn("failed to close repository", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
	}
}
