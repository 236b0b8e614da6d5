package repository

import (
	"context"

	"github.com/avc-dev/linktree/internal/model"
)

// Store - контракт бэкенда хранения записей редиректа
type Store interface {
	Save(ctx context.Context, rec model.RedirectRecord) error
	DeleteFields(ctx context.Context, slug string, fields ...string) error
	Get(ctx context.Context, slug string) (model.RedirectRecord, error)
	List(ctx context.Context) ([]model.RedirectRecord, error)
	Close() error
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

func (r *Repository) Close() error {
	return r.underlying.Close()
}
