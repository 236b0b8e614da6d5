package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/linktree/internal/model"
)

func (r *Repository) GetLink(ctx context.Context, slug string) (model.RedirectRecord, error) {
	rec, err := r.underlying.Get(ctx, slug)
	if err != nil {
		return model.RedirectRecord{}, fmt.Errorf("failed to get link by slug: %w", err)
	}

	return rec, nil
}

func (r *Repository) ListLinks(ctx context.Context) ([]model.RedirectRecord, error) {
	records, err := r.underlying.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	return records, nil
}
