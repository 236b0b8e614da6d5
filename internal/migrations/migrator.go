// Package migrations хранит схему PostgreSQL хранилища и применяет ее при старте.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// migrationsTable отделяет версии схемы linktree от других сервисов в той же базе
const migrationsTable = "linktree_schema_migrations"

//go:embed schema/*.sql
var schema embed.FS

func newSource() (source.Driver, error) {
	driver, err := iofs.New(schema, "schema")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}
	return driver, nil
}

// Up применяет все новые миграции. Закрывает db по завершении,
// поэтому передавать нужно отдельное подключение для миграций.
func Up(db *sql.DB, logger *zap.Logger) error {
	src, err := newSource()
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("Database schema is up to date")
	case err != nil:
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info("Database schema ready", zap.Uint("version", version), zap.Bool("dirty", dirty))

	return nil
}
