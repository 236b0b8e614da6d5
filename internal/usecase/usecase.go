package usecase

import (
	"context"
	"sync"

	"github.com/avc-dev/linktree/internal/config"
	"github.com/avc-dev/linktree/internal/model"
	"github.com/avc-dev/linktree/internal/notion"
	"go.uber.org/zap"
)

// NotionClient определяет операции с Notion API
type NotionClient interface {
	GetPage(ctx context.Context, pageID string) (*notion.Page, error)
	IncrementNumber(ctx context.Context, pageID, property string) (float64, error)
}

// PageMapper превращает страницу Notion в запись редиректа
type PageMapper interface {
	Map(page *notion.Page) model.RedirectRecord
}

// LinkRepository определяет интерфейс для работы с хранилищем ссылок
type LinkRepository interface {
	SaveLink(ctx context.Context, rec model.RedirectRecord) error
	DeleteLinkFields(ctx context.Context, slug string, fields ...string) error
	GetLink(ctx context.Context, slug string) (model.RedirectRecord, error)
	ListLinks(ctx context.Context) ([]model.RedirectRecord, error)
}

// LinkResolver вычисляет итоговый href записи
type LinkResolver interface {
	Resolve(rec model.RedirectRecord) model.ResolvedLink
}

// PublicLinksCache хранит собранный публичный список под тегом
type PublicLinksCache interface {
	GetOrLoad(ctx context.Context, tag, key string, load func(context.Context) ([]model.PublicLink, error)) ([]model.PublicLink, bool, error)
}

// Revalidator сбрасывает кэши, помеченные тегом
type Revalidator interface {
	RevalidateTag(ctx context.Context, tag string) error
}

// Alerter отправляет оповещение о сбое
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

// Dependencies - внешние зависимости LinkUsecase
type Dependencies struct {
	Notion      NotionClient
	Mapper      PageMapper
	Repo        LinkRepository
	Resolver    LinkResolver
	Cache       PublicLinksCache
	Revalidator Revalidator
	Alerter     Alerter
}

// LinkUsecase содержит бизнес-логику link tree
type LinkUsecase struct {
	notion      NotionClient
	mapper      PageMapper
	repo        LinkRepository
	resolver    LinkResolver
	cache       PublicLinksCache
	revalidator Revalidator
	alerter     Alerter
	cfg         *config.Config
	logger      *zap.Logger

	// background отслеживает задачи, запущенные через goBestEffort
	background sync.WaitGroup
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(deps Dependencies, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		notion:      deps.Notion,
		mapper:      deps.Mapper,
		repo:        deps.Repo,
		resolver:    deps.Resolver,
		cache:       deps.Cache,
		revalidator: deps.Revalidator,
		alerter:     deps.Alerter,
		cfg:         cfg,
		logger:      logger,
	}
}

// Wait дожидается фоновых задач. Используется при остановке сервиса и в тестах.
func (u *LinkUsecase) Wait() {
	u.background.Wait()
}
