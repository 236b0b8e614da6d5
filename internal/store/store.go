package store

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/avc-dev/linktree/internal/model"
)

var (
	ErrNotFound     = errors.New("key not found")
	ErrEmptySlug    = errors.New("empty slug")
	ErrUnknownField = errors.New("unknown field")
)

// RecordMap представляет маппинг slug на запись
type RecordMap = map[string]model.RedirectRecord

// Store - in-memory хранилище записей. Используется для локальной разработки
// и как основа FileStore.
type Store struct {
	store RecordMap
	mutex sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		store: make(RecordMap),
	}
}

func (s *Store) Get(_ context.Context, slug string) (model.RedirectRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rec, ok := s.store[slug]
	if !ok {
		return model.RedirectRecord{}, fmt.Errorf("key %s: %w", slug, ErrNotFound)
	}

	return cloneRecord(rec), nil
}

// Save записывает запись целиком; последняя запись побеждает
func (s *Store) Save(_ context.Context, rec model.RedirectRecord) error {
	if rec.Slug == "" {
		return ErrEmptySlug
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.store[rec.Slug] = cloneRecord(rec)

	return nil
}

// DeleteFields очищает опциональные поля записи
func (s *Store) DeleteFields(_ context.Context, slug string, fields ...string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	rec, ok := s.store[slug]
	if !ok {
		return nil
	}

	for _, field := range fields {
		if err := clearField(&rec, field); err != nil {
			return err
		}
	}
	s.store[slug] = rec

	return nil
}

func (s *Store) List(_ context.Context) ([]model.RedirectRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	slugs := slices.Sorted(maps.Keys(s.store))
	records := make([]model.RedirectRecord, 0, len(slugs))
	for _, slug := range slugs {
		records = append(records, cloneRecord(s.store[slug]))
	}

	return records, nil
}

func (s *Store) Close() error {
	return nil
}

// InitializeWith инициализирует хранилище данными без проверок.
// Используется для загрузки данных из файла.
func (s *Store) InitializeWith(data RecordMap) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	maps.Copy(s.store, data)
}

func cloneRecord(rec model.RedirectRecord) model.RedirectRecord {
	rec.Files = slices.Clone(rec.Files)
	return rec
}

// clearField обнуляет поле записи по его имени в хранилище
func clearField(rec *model.RedirectRecord, field string) error {
	switch field {
	case model.FieldTitle:
		rec.Title = ""
	case model.FieldDescription:
		rec.Description = ""
	case model.FieldDetails:
		rec.Details = ""
	case model.FieldIconEmoji:
		rec.IconEmoji = ""
	case model.FieldCategory:
		rec.Category = ""
	case model.FieldImageURL:
		rec.ImageURL = ""
	case model.FieldVideoURL:
		rec.VideoURL = ""
	case model.FieldFiles:
		rec.Files = nil
	case model.FieldRedirectExternal:
		rec.RedirectExternal = false
	case model.FieldPinned:
		rec.Pinned = false
	case model.FieldUTM:
		rec.UTM = model.UTM{}
	default:
		return fmt.Errorf("field %s: %w", field, ErrUnknownField)
	}
	return nil
}
