package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/avc-dev/linktree/internal/model"
	"github.com/avc-dev/linktree/internal/service"
	"go.uber.org/zap"
)

// Redirect проверяет цель перехода. При указанном pageID счетчик кликов
// увеличивается в фоне и не влияет на ответ.
func (u *LinkUsecase) Redirect(ctx context.Context, to string, origin *url.URL, pageID string) (model.RedirectTarget, error) {
	target, err := service.NormalizeRedirectTarget(to, origin)
	if err != nil {
		u.logger.Info("redirect rejected", zap.String("to", to), zap.Error(err))
		return model.RedirectTarget{}, err
	}

	if pageID = strings.TrimSpace(pageID); pageID != "" {
		u.TrackClick(ctx, pageID)
	}

	return target, nil
}

// TrackClick увеличивает числовое свойство страницы Notion в фоне
func (u *LinkUsecase) TrackClick(ctx context.Context, pageID string) {
	property := u.cfg.Notion.ClickProperty
	u.goBestEffort(ctx, "increment clicks", func(ctx context.Context) error {
		clicks, err := u.notion.IncrementNumber(ctx, pageID, property)
		if err != nil {
			return err
		}
		u.logger.Debug("click tracked",
			zap.String("page_id", pageID),
			zap.Float64("clicks", clicks),
		)
		return nil
	})
}
