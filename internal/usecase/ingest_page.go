package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc-dev/linktree/internal/model"
	"go.uber.org/zap"
)

// IngestPage загружает страницу Notion и записывает ее в хранилище.
// Единственный обязательный эффект - запись в хранилище; удаление устаревших
// полей, сброс кэша и оповещения выполняются по возможности.
func (u *LinkUsecase) IngestPage(ctx context.Context, pageID string) (model.RedirectRecord, error) {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return model.RedirectRecord{}, ErrMissingPageID
	}

	page, err := u.notion.GetPage(ctx, pageID)
	if err != nil {
		err = fmt.Errorf("failed to fetch notion page %s: %w", pageID, err)
		u.alertFailure(ctx, err)
		return model.RedirectRecord{}, err
	}

	rec := u.mapper.Map(page)
	if rec.Slug == "" || rec.Destination == "" {
		u.logger.Info("notion page skipped",
			zap.String("page_id", pageID),
			zap.String("slug", rec.Slug),
		)
		return model.RedirectRecord{}, fmt.Errorf("page %s: %w", pageID, ErrIncompleteRecord)
	}
	if page.Archived {
		rec.LinkTreeEnabled = false
	}

	stale := model.AbsentOptionalFields(rec)
	u.runBestEffort(ctx, "delete stale fields", func(ctx context.Context) error {
		return u.repo.DeleteLinkFields(ctx, rec.Slug, stale...)
	})

	if err := u.repo.SaveLink(ctx, rec); err != nil {
		err = fmt.Errorf("failed to store link %s: %w", rec.Slug, err)
		u.alertFailure(ctx, err)
		return model.RedirectRecord{}, err
	}

	u.runBestEffort(ctx, "revalidate tag", func(ctx context.Context) error {
		return u.revalidator.RevalidateTag(ctx, u.cfg.Cache.Tag)
	})

	u.logger.Info("notion page ingested",
		zap.String("page_id", pageID),
		zap.String("slug", rec.Slug),
		zap.Bool("enabled", rec.LinkTreeEnabled),
		zap.Strings("deleted_fields", stale),
	)

	return rec, nil
}

func (u *LinkUsecase) alertFailure(ctx context.Context, cause error) {
	u.logger.Error("notion webhook failed", zap.Error(cause))
	u.runBestEffort(ctx, "alert", func(ctx context.Context) error {
		return u.alerter.Alert(ctx, "linktree: notion webhook failed: "+cause.Error())
	})
}
