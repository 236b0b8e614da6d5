package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/avc-dev/linktree/internal/model"
	"github.com/redis/go-redis/v9"
)

// RedisStore хранит каждую запись в hash campaign:<slug>.
// Все значения строковые, utm и files сериализуются в JSON.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает RedisStore поверх готового клиента
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Save записывает все присутствующие поля записи. Отсутствующие поля не трогаются,
// их удаление - задача DeleteFields.
func (s *RedisStore) Save(ctx context.Context, rec model.RedirectRecord) error {
	if rec.Slug == "" {
		return ErrEmptySlug
	}

	fields, err := encodeHash(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record %s: %w", rec.Slug, err)
	}

	if err := s.client.HSet(ctx, RecordKey(rec.Slug), fields).Err(); err != nil {
		return fmt.Errorf("failed to write record %s: %w", rec.Slug, err)
	}

	return nil
}

func (s *RedisStore) DeleteFields(ctx context.Context, slug string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}

	if err := s.client.HDel(ctx, RecordKey(slug), fields...).Err(); err != nil {
		return fmt.Errorf("failed to delete fields of %s: %w", slug, err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, slug string) (model.RedirectRecord, error) {
	values, err := s.client.HGetAll(ctx, RecordKey(slug)).Result()
	if err != nil {
		return model.RedirectRecord{}, fmt.Errorf("failed to read record %s: %w", slug, err)
	}
	if len(values) == 0 {
		return model.RedirectRecord{}, fmt.Errorf("key %s: %w", slug, ErrNotFound)
	}

	return decodeHash(slug, values), nil
}

// List обходит ключи campaign:* через SCAN и читает их пачками в pipeline
func (s *RedisStore) List(ctx context.Context) ([]model.RedirectRecord, error) {
	var (
		cursor  uint64
		records []model.RedirectRecord
	)

	for {
		keys, next, err := s.client.Scan(ctx, cursor, KeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan records: %w", err)
		}

		batch, err := s.readBatch(ctx, keys)
		if err != nil {
			return nil, err
		}
		records = append(records, batch...)

		cursor = next
		if cursor == 0 {
			break
		}
	}

	slices.SortFunc(records, func(a, b model.RedirectRecord) int {
		return strings.Compare(a.Slug, b.Slug)
	})

	return records, nil
}

func (s *RedisStore) readBatch(ctx context.Context, keys []string) ([]model.RedirectRecord, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(keys))
	_, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, key := range keys {
			cmds[i] = pipe.HGetAll(ctx, key)
		}
		return nil
	})
	// Ответ Redis на отдельную команду (например WRONGTYPE для чужого ключа под префиксом)
	// пропускается ниже. Остальные ошибки означают сбой соединения.
	var replyErr redis.Error
	if err != nil && !errors.Is(err, redis.Nil) && !errors.As(err, &replyErr) {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	records := make([]model.RedirectRecord, 0, len(keys))
	for i, cmd := range cmds {
		values, err := cmd.Result()
		if err != nil || len(values) == 0 {
			continue
		}
		records = append(records, decodeHash(strings.TrimPrefix(keys[i], KeyPrefix), values))
	}

	return records, nil
}

// Close ничего не делает: клиент общий с лимитером и закрывается владельцем
func (s *RedisStore) Close() error {
	return nil
}

func encodeHash(rec model.RedirectRecord) (map[string]any, error) {
	utm, err := json.Marshal(rec.UTM)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		model.FieldDestination:     rec.Destination,
		model.FieldUTM:             string(utm),
		model.FieldLinkTreeEnabled: strconv.FormatBool(rec.LinkTreeEnabled),
		model.FieldPinned:          strconv.FormatBool(rec.Pinned),
	}

	optional := map[string]string{
		model.FieldTitle:       rec.Title,
		model.FieldDescription: rec.Description,
		model.FieldDetails:     rec.Details,
		model.FieldIconEmoji:   rec.IconEmoji,
		model.FieldImageURL:    rec.ImageURL,
		model.FieldCategory:    rec.Category,
		model.FieldVideoURL:    rec.VideoURL,
	}
	for field, value := range optional {
		if value != "" {
			fields[field] = value
		}
	}

	if len(rec.Files) > 0 {
		files, err := json.Marshal(rec.Files)
		if err != nil {
			return nil, err
		}
		fields[model.FieldFiles] = string(files)
	}
	if rec.RedirectExternal {
		fields[model.FieldRedirectExternal] = "true"
	}

	return fields, nil
}

// decodeHash не падает на битых значениях: такие поля считаются отсутствующими
func decodeHash(slug string, values map[string]string) model.RedirectRecord {
	rec := model.RedirectRecord{
		Slug:             slug,
		Destination:      values[model.FieldDestination],
		Title:            values[model.FieldTitle],
		Description:      values[model.FieldDescription],
		Details:          values[model.FieldDetails],
		IconEmoji:        values[model.FieldIconEmoji],
		Category:         values[model.FieldCategory],
		ImageURL:         values[model.FieldImageURL],
		VideoURL:         values[model.FieldVideoURL],
		LinkTreeEnabled:  parseBool(values[model.FieldLinkTreeEnabled]),
		Pinned:           parseBool(values[model.FieldPinned]),
		RedirectExternal: parseBool(values[model.FieldRedirectExternal]),
	}

	if raw := values[model.FieldUTM]; raw != "" {
		var utm model.UTM
		if json.Unmarshal([]byte(raw), &utm) == nil {
			rec.UTM = utm
		}
	}
	if raw := values[model.FieldFiles]; raw != "" {
		var files []model.FileAttachment
		if json.Unmarshal([]byte(raw), &files) == nil && len(files) > 0 {
			rec.Files = files
		}
	}

	return rec
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
