package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/avc-dev/linktree/internal/model"
	"github.com/avc-dev/linktree/internal/store"
	"go.uber.org/zap"
)

const publicLinksKey = "public"

// ListPublicLinks возвращает включенные ссылки: сначала закрепленные,
// затем по категории и заголовку
func (u *LinkUsecase) ListPublicLinks(ctx context.Context) ([]model.PublicLink, error) {
	links, hit, err := u.cache.GetOrLoad(ctx, u.cfg.Cache.Tag, publicLinksKey, u.loadPublicLinks)
	if err != nil {
		u.logger.Error("failed to list public links", zap.Error(err))
		return nil, err
	}

	u.logger.Debug("public links served", zap.Bool("cache_hit", hit), zap.Int("count", len(links)))

	return links, nil
}

func (u *LinkUsecase) loadPublicLinks(ctx context.Context) ([]model.PublicLink, error) {
	records, err := u.repo.ListLinks(ctx)
	if err != nil {
		return nil, err
	}

	links := make([]model.PublicLink, 0, len(records))
	for _, rec := range records {
		if !rec.LinkTreeEnabled {
			continue
		}
		links = append(links, model.NewPublicLink(rec, u.resolver.Resolve(rec)))
	}

	slices.SortStableFunc(links, comparePublicLinks)

	return links, nil
}

func comparePublicLinks(a, b model.PublicLink) int {
	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}

	return cmp.Or(
		strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category)),
		strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
		strings.Compare(a.Slug, b.Slug),
	)
}

// GetPublicLink возвращает одну включенную ссылку. Отключенные записи
// неотличимы от несуществующих.
func (u *LinkUsecase) GetPublicLink(ctx context.Context, slug string) (model.PublicLink, error) {
	rec, err := u.repo.GetLink(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.PublicLink{}, fmt.Errorf("%w: %s", ErrLinkNotFound, slug)
		}
		return model.PublicLink{}, err
	}
	if !rec.LinkTreeEnabled {
		return model.PublicLink{}, fmt.Errorf("%w: %s", ErrLinkNotFound, slug)
	}

	return model.NewPublicLink(rec, u.resolver.Resolve(rec)), nil
}

// ListAllLinks возвращает все записи, включая отключенные, для администратора
func (u *LinkUsecase) ListAllLinks(ctx context.Context) ([]model.AdminLink, error) {
	records, err := u.repo.ListLinks(ctx)
	if err != nil {
		return nil, err
	}

	links := make([]model.AdminLink, 0, len(records))
	for _, rec := range records {
		links = append(links, model.AdminLink{
			RedirectRecord: rec,
			ShortURL:       u.cfg.BaseURL.Join(rec.Slug),
			Resolved:       u.resolver.Resolve(rec),
		})
	}

	return links, nil
}
