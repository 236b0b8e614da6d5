package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avc-dev/linktree/internal/config/db"
	"github.com/avc-dev/linktree/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// clearColumns сопоставляет поля записи с выражениями очистки колонок.
// Имена колонок берутся только отсюда, пользовательский ввод в SQL не попадает.
var clearColumns = map[string]string{
	model.FieldTitle:            "title = NULL",
	model.FieldDescription:      "description = NULL",
	model.FieldDetails:          "details = NULL",
	model.FieldIconEmoji:        "icon_emoji = NULL",
	model.FieldCategory:         "category = NULL",
	model.FieldImageURL:         "image_url = NULL",
	model.FieldVideoURL:         "video_url = NULL",
	model.FieldFiles:            "files = NULL",
	model.FieldUTM:              "utm = NULL",
	model.FieldPinned:           "pinned = FALSE",
	model.FieldRedirectExternal: "redirect_external = FALSE",
}

// DatabaseStore реализует Store для PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает DatabaseStore поверх пула подключений
func NewDatabaseStore(database *db.Postgres) *DatabaseStore {
	return &DatabaseStore{
		pool: database.Pool,
	}
}

// Save выполняет upsert. Отсутствующие опциональные поля не затирают сохраненные,
// как и в Redis: их очищает DeleteFields.
func (ds *DatabaseStore) Save(ctx context.Context, rec model.RedirectRecord) error {
	if rec.Slug == "" {
		return ErrEmptySlug
	}

	utm, err := json.Marshal(rec.UTM)
	if err != nil {
		return fmt.Errorf("failed to encode utm: %w", err)
	}
	var files []byte
	if len(rec.Files) > 0 {
		if files, err = json.Marshal(rec.Files); err != nil {
			return fmt.Errorf("failed to encode files: %w", err)
		}
	}

	query := `
		INSERT INTO links (
			slug, destination, title, description, details, icon_emoji,
			link_tree_enabled, pinned, category, image_url, video_url,
			files, utm, redirect_external, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		ON CONFLICT (slug) DO UPDATE SET
			destination       = EXCLUDED.destination,
			title             = COALESCE(EXCLUDED.title, links.title),
			description       = COALESCE(EXCLUDED.description, links.description),
			details           = COALESCE(EXCLUDED.details, links.details),
			icon_emoji        = COALESCE(EXCLUDED.icon_emoji, links.icon_emoji),
			link_tree_enabled = EXCLUDED.link_tree_enabled,
			pinned            = EXCLUDED.pinned,
			category          = COALESCE(EXCLUDED.category, links.category),
			image_url         = COALESCE(EXCLUDED.image_url, links.image_url),
			video_url         = COALESCE(EXCLUDED.video_url, links.video_url),
			files             = COALESCE(EXCLUDED.files, links.files),
			utm               = EXCLUDED.utm,
			redirect_external = EXCLUDED.redirect_external OR links.redirect_external,
			updated_at        = NOW()
	`

	_, err = ds.pool.Exec(ctx, query,
		rec.Slug,
		rec.Destination,
		nullIfEmpty(rec.Title),
		nullIfEmpty(rec.Description),
		nullIfEmpty(rec.Details),
		nullIfEmpty(rec.IconEmoji),
		rec.LinkTreeEnabled,
		rec.Pinned,
		nullIfEmpty(rec.Category),
		nullIfEmpty(rec.ImageURL),
		nullIfEmpty(rec.VideoURL),
		files,
		utm,
		rec.RedirectExternal,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert link %s: %w", rec.Slug, err)
	}

	return nil
}

func (ds *DatabaseStore) DeleteFields(ctx context.Context, slug string, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}

	query := "UPDATE links SET updated_at = NOW()"
	for _, field := range fields {
		expr, ok := clearColumns[field]
		if !ok {
			return fmt.Errorf("field %s: %w", field, ErrUnknownField)
		}
		query += ", " + expr
	}
	query += " WHERE slug = $1"

	if _, err := ds.pool.Exec(ctx, query, slug); err != nil {
		return fmt.Errorf("failed to clear fields of %s: %w", slug, err)
	}

	return nil
}

const selectColumns = `
	SELECT slug, destination, title, description, details, icon_emoji,
	       link_tree_enabled, pinned, category, image_url, video_url,
	       files, utm, redirect_external
	FROM links
`

func (ds *DatabaseStore) Get(ctx context.Context, slug string) (model.RedirectRecord, error) {
	row := ds.pool.QueryRow(ctx, selectColumns+" WHERE slug = $1", slug)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RedirectRecord{}, fmt.Errorf("key %s: %w", slug, ErrNotFound)
		}
		return model.RedirectRecord{}, fmt.Errorf("failed to read from database: %w", err)
	}

	return rec, nil
}

func (ds *DatabaseStore) List(ctx context.Context) ([]model.RedirectRecord, error) {
	rows, err := ds.pool.Query(ctx, selectColumns+" ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var records []model.RedirectRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

func (ds *DatabaseStore) Close() error {
	return nil
}

func scanRecord(row pgx.Row) (model.RedirectRecord, error) {
	var (
		rec        model.RedirectRecord
		title      *string
		desc       *string
		details    *string
		iconEmoji  *string
		category   *string
		imageURL   *string
		videoURL   *string
		files, utm []byte
	)

	err := row.Scan(
		&rec.Slug, &rec.Destination, &title, &desc, &details, &iconEmoji,
		&rec.LinkTreeEnabled, &rec.Pinned, &category, &imageURL, &videoURL,
		&files, &utm, &rec.RedirectExternal,
	)
	if err != nil {
		return model.RedirectRecord{}, err
	}

	rec.Title = deref(title)
	rec.Description = deref(desc)
	rec.Details = deref(details)
	rec.IconEmoji = deref(iconEmoji)
	rec.Category = deref(category)
	rec.ImageURL = deref(imageURL)
	rec.VideoURL = deref(videoURL)

	if len(files) > 0 {
		_ = json.Unmarshal(files, &rec.Files)
	}
	if len(utm) > 0 {
		_ = json.Unmarshal(utm, &rec.UTM)
	}

	return rec, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
