package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/linktree/internal/alert"
	"github.com/avc-dev/linktree/internal/cache"
	"github.com/avc-dev/linktree/internal/config"
	"github.com/avc-dev/linktree/internal/config/db"
	"github.com/avc-dev/linktree/internal/handler"
	"github.com/avc-dev/linktree/internal/migrations"
	"github.com/avc-dev/linktree/internal/model"
	"github.com/avc-dev/linktree/internal/notion"
	"github.com/avc-dev/linktree/internal/ratelimit"
	"github.com/avc-dev/linktree/internal/repository"
	"github.com/avc-dev/linktree/internal/service"
	"github.com/avc-dev/linktree/internal/store"
	"github.com/avc-dev/linktree/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "ratelimit:webhook:"

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) error {
	cfg, logger := a.config, a.logger

	if cfg.StorageBackend == config.StorageRedis || cfg.Redis.URL != "" {
		client, err := newRedisClient(cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to configure redis: %w", err)
		}
		a.redis = client
	}

	storage, pinger, err := a.initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.repo = repository.New(storage)

	tagCache := cache.NewTagCache[[]model.PublicLink](cfg.Cache.TTL)
	revalidator := cache.Chain{tagCache}
	if cfg.Cache.RevalidateURL != "" {
		revalidator = append(revalidator, cache.NewHTTPRevalidator(cfg.Cache.RevalidateURL, cfg.Cache.RevalidateSecret, cfg.Notion.Timeout))
		logger.Info("External revalidation enabled", zap.String("url", cfg.Cache.RevalidateURL))
	}

	notionClient := notion.NewClient(notion.ClientOptions{
		BaseURL:    cfg.Notion.BaseURL,
		Token:      cfg.Notion.Token,
		APIVersion: cfg.Notion.Version,
		Timeout:    cfg.Notion.Timeout,
	})

	a.usecase = usecase.NewLinkUsecase(usecase.Dependencies{
		Notion:      notionClient,
		Mapper:      notion.NewMapper(notion.DefaultPropertyNames()),
		Repo:        a.repo,
		Resolver:    service.NewLinkResolver(logger),
		Cache:       tagCache,
		Revalidator: revalidator,
		Alerter: alert.New(alert.Config{
			SlackToken:     cfg.Alert.SlackToken,
			SlackChannelID: cfg.Alert.SlackChannelID,
			WebhookURL:     cfg.Alert.WebhookURL,
			Project:        "linktree",
		}, logger),
	}, cfg, logger)

	h := handler.New(a.usecase, logger, pinger)
	authService := service.NewAuthService(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	if cfg.Admin.JWTSecret == "" {
		logger.Warn("ADMIN_JWT_SECRET is empty, admin API rejects all requests")
	}
	if cfg.Webhook.Secret == "" {
		logger.Warn("NOTION_WEBHOOK_SECRET is empty, webhook rejects all requests")
	}

	a.router = newRouter(h, a.newLimiter(), authService, cfg, logger)

	return nil
}

// initStorage создает хранилище на основе конфигурации. Второе значение
// используется для /ping и равно nil для хранилищ без соединения.
func (a *App) initStorage(ctx context.Context) (repository.Store, handler.Pinger, error) {
	cfg, logger := a.config, a.logger

	switch cfg.StorageBackend {
	case config.StoragePostgres:
		database, err := db.Connect(ctx, db.DefaultOptions(cfg.DatabaseDSN))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.dbPool = database

		if err := migrations.Up(database.DB(), logger); err != nil {
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(database), database, nil

	case config.StorageFile:
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil, nil

	case config.StorageMemory:
		logger.Info("Using in-memory storage")
		return store.NewStore(), nil, nil

	default:
		if err := a.redis.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		logger.Info("Using redis storage")
		return store.NewRedisStore(a.redis), redisPinger{client: a.redis}, nil
	}
}

// newLimiter выбирает лимитер вебхука: общий Redis, если он есть, иначе в памяти процесса
func (a *App) newLimiter() ratelimit.Limiter {
	cfg := a.config.Webhook
	if a.redis != nil {
		return ratelimit.NewRedisLimiter(a.redis, rateLimitKeyPrefix, cfg.RateLimit, cfg.RateWindow)
	}
	return ratelimit.NewMemoryLimiter(cfg.RateLimit, cfg.RateWindow)
}

// newRedisClient создает клиента из REDIS_URL или из отдельных полей
func newRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return redis.NewClient(opts), nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
