package store

import (
	"context"
	"fmt"

	"github.com/avc-dev/linktree/internal/model"
	"github.com/google/uuid"
)

// FileStore декоратор над Store, который добавляет персистентность через журнал в файле
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
}

// NewFileStore создаёт FileStore и восстанавливает состояние из журнала
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

func (fs *FileStore) Get(ctx context.Context, slug string) (model.RedirectRecord, error) {
	return fs.store.Get(ctx, slug)
}

func (fs *FileStore) List(ctx context.Context) ([]model.RedirectRecord, error) {
	return fs.store.List(ctx)
}

// Save записывает запись в память и добавляет ее в журнал
func (fs *FileStore) Save(ctx context.Context, rec model.RedirectRecord) error {
	if err := fs.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("failed to write to in-memory store: %w", err)
	}

	entry := FileEntry{
		UUID:   uuid.New().String(),
		Op:     opSave,
		Slug:   rec.Slug,
		Record: &rec,
	}
	if err := fs.fileStorage.Append(entry); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return nil
}

func (fs *FileStore) DeleteFields(ctx context.Context, slug string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := fs.store.DeleteFields(ctx, slug, fields...); err != nil {
		return err
	}

	entry := FileEntry{
		UUID:   uuid.New().String(),
		Op:     opDeleteFields,
		Slug:   slug,
		Fields: fields,
	}
	if err := fs.fileStorage.Append(entry); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return nil
}

func (fs *FileStore) Close() error {
	return nil
}

// loadFromFile проигрывает журнал; при повторах slug побеждает последняя запись
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	data := make(RecordMap)
	for _, entry := range entries {
		switch entry.Op {
		case opSave:
			if entry.Record != nil && entry.Record.Slug != "" {
				data[entry.Record.Slug] = *entry.Record
			}
		case opDeleteFields:
			rec, ok := data[entry.Slug]
			if !ok {
				continue
			}
			for _, field := range entry.Fields {
				_ = clearField(&rec, field)
			}
			data[entry.Slug] = rec
		}
	}

	fs.store.InitializeWith(data)

	return nil
}
