package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/linktree/internal/model"
)

// SaveLink записывает присутствующие поля записи
func (r *Repository) SaveLink(ctx context.Context, rec model.RedirectRecord) error {
	if err := r.underlying.Save(ctx, rec); err != nil {
		return fmt.Errorf("failed to save link: %w", err)
	}

	return nil
}

// DeleteLinkFields удаляет из записи устаревшие опциональные поля
func (r *Repository) DeleteLinkFields(ctx context.Context, slug string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}

	if err := r.underlying.DeleteFields(ctx, slug, fields...); err != nil {
		return fmt.Errorf("failed to delete link fields: %w", err)
	}

	return nil
}
