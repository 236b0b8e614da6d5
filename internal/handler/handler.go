package handler

import (
	"context"
	"net/url"

	"github.com/avc-dev/linktree/internal/model"
	"go.uber.org/zap"
)

// LinkUsecase определяет интерфейс для бизнес-логики link tree
type LinkUsecase interface {
	IngestPage(ctx context.Context, pageID string) (model.RedirectRecord, error)
	ListPublicLinks(ctx context.Context) ([]model.PublicLink, error)
	GetPublicLink(ctx context.Context, slug string) (model.PublicLink, error)
	ListAllLinks(ctx context.Context) ([]model.AdminLink, error)
	Redirect(ctx context.Context, to string, origin *url.URL, pageID string) (model.RedirectTarget, error)
}

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы
type Handler struct {
	usecase LinkUsecase
	logger  *zap.Logger
	pinger  Pinger
}

// New создает новый экземпляр Handler. pinger может быть nil для хранилищ
// без внешнего соединения.
func New(usecase LinkUsecase, logger *zap.Logger, pinger Pinger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		pinger:  pinger,
	}
}
