package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Варианты STORAGE_BACKEND
const (
	StorageRedis    = "redis"
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config содержит всю конфигурацию сервиса
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	StorageBackend  string         `env:"STORAGE_BACKEND"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`

	Log     LogConfig
	Redis   RedisConfig
	Notion  NotionConfig
	Webhook WebhookConfig
	Alert   AlertConfig
	Cache   CacheConfig
	Admin   AdminConfig
}

type LogConfig struct {
	Level    string `env:"LOG_LEVEL"`
	Encoding string `env:"LOG_ENCODING"`
}

// RedisConfig - REDIS_URL имеет приоритет над отдельными полями
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

type NotionConfig struct {
	Token         string        `env:"NOTION_KEY"`
	BaseURL       string        `env:"NOTION_BASE_URL"`
	Version       string        `env:"NOTION_VERSION"`
	Timeout       time.Duration `env:"NOTION_TIMEOUT"`
	ClickProperty string        `env:"NOTION_CLICK_PROPERTY"`
}

type WebhookConfig struct {
	Secret     string        `env:"NOTION_WEBHOOK_SECRET"`
	RateLimit  int           `env:"WEBHOOK_RATE_LIMIT"`
	RateWindow time.Duration `env:"WEBHOOK_RATE_WINDOW"`
}

type AlertConfig struct {
	SlackToken     string `env:"SLACK_BOT_TOKEN"`
	SlackChannelID string `env:"SLACK_CHANNEL_ID"`
	WebhookURL     string `env:"ALERT_WEBHOOK_URL"`
}

type CacheConfig struct {
	Tag              string        `env:"CACHE_TAG"`
	TTL              time.Duration `env:"CACHE_TTL"`
	RevalidateURL    string        `env:"REVALIDATE_URL"`
	RevalidateSecret string        `env:"REVALIDATE_SECRET"`
}

type AdminConfig struct {
	JWTSecret string        `env:"ADMIN_JWT_SECRET"`
	TokenTTL  time.Duration `env:"ADMIN_TOKEN_TTL"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         URLPrefix("http://localhost:8080/"),
		StorageBackend:  StorageRedis,
		ShutdownTimeout: 10 * time.Second,
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Notion: NotionConfig{
			BaseURL:       "https://api.notion.com",
			Version:       "2022-06-28",
			Timeout:       10 * time.Second,
			ClickProperty: "Clicks",
		},
		Webhook: WebhookConfig{
			RateLimit:  10,
			RateWindow: time.Minute,
		},
		Cache: CacheConfig{
			Tag: "linktree",
			TTL: 5 * time.Minute,
		},
		Admin: AdminConfig{
			TokenTTL: 24 * time.Hour,
		},
	}
}

// Load собирает конфигурацию: значения по умолчанию, затем флаги командной строки,
// затем переменные окружения (включая .env). Окружение имеет наивысший приоритет.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env есть только при локальной разработке

	return load(os.Args[1:])
}

// LoadAdmin читает только настройки администратора из окружения
func LoadAdmin() (AdminConfig, error) {
	_ = godotenv.Load()

	cfg := NewDefaultConfig().Admin
	if err := env.Parse(&cfg); err != nil {
		return AdminConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

func load(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("linktree", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "public base URL of the service")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend: redis, memory, file, postgres")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to the file storage journal")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case StorageRedis, StorageMemory:
	case StorageFile:
		if c.FileStoragePath == "" {
			return fmt.Errorf("FILE_STORAGE_PATH is required for %s storage", StorageFile)
		}
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for %s storage", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}

	if c.Webhook.RateLimit < 1 {
		return fmt.Errorf("WEBHOOK_RATE_LIMIT must be positive, got %d", c.Webhook.RateLimit)
	}

	return nil
}
