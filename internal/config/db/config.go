// Package db открывает подключение к PostgreSQL для хранилища ссылок.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Options - параметры пула. Нулевые значения оставляют настройки pgxpool.
type Options struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// DefaultOptions подходит для сервиса с редкими записями из вебхука
func DefaultOptions(dsn string) Options {
	return Options{
		DSN:               dsn,
		MaxConns:          4,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
	}
}

//go:generate mockery --name Database

// Database - подключение, которым владеет приложение
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// DB возвращает *sql.DB для golang-migrate
	DB() *sql.DB
}

// Postgres держит пул pgx для запросов и *sql.DB поверх той же конфигурации для миграций
type Postgres struct {
	Pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// Connect открывает пул и проверяет соединение
func Connect(ctx context.Context, opts Options) (*Postgres, error) {
	if opts.DSN == "" {
		return nil, errors.New("database DSN is required")
	}

	poolConfig, err := pgxpool.ParseConfig(opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database DSN: %w", err)
	}
	if opts.MaxConns > 0 {
		poolConfig.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		poolConfig.MinConns = opts.MinConns
	}
	if opts.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = opts.MaxConnLifetime
	}
	if opts.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = opts.MaxConnIdleTime
	}
	if opts.HealthCheckPeriod > 0 {
		poolConfig.HealthCheckPeriod = opts.HealthCheckPeriod
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{
		Pool:  pool,
		sqlDB: stdlib.OpenDB(*poolConfig.ConnConfig),
	}, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

// Close закрывает пул и *sql.DB. Повторный вызов безопасен.
func (p *Postgres) Close() {
	p.Pool.Close()
	_ = p.sqlDB.Close()
}

func (p *Postgres) DB() *sql.DB {
	return p.sqlDB
}
