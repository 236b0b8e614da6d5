// Package alert отправляет оповещения о сбоях обработки вебхука.
package alert

import (
	"context"

	"go.uber.org/zap"
)

// Alerter доставляет текстовое оповещение во внешний канал
type Alerter interface {
	Alert(ctx context.Context, message string) error
}

// Config описывает доступные каналы. Slack имеет приоритет над вебхуком.
type Config struct {
	SlackToken     string
	SlackChannelID string
	SlackAPIURL    string
	WebhookURL     string
	Project        string
}

// New выбирает реализацию по конфигурации; без каналов возвращает Nop
func New(cfg Config, logger *zap.Logger) Alerter {
	switch {
	case cfg.SlackToken != "" && cfg.SlackChannelID != "":
		logger.Info("Alerts are sent to Slack", zap.String("channel", cfg.SlackChannelID))
		return NewSlackAlerter(cfg.SlackToken, cfg.SlackChannelID, cfg.SlackAPIURL)
	case cfg.WebhookURL != "":
		logger.Info("Alerts are sent to webhook")
		return NewWebhookAlerter(cfg.WebhookURL, cfg.Project, nil)
	default:
		logger.Info("Alerts are disabled")
		return Nop{}
	}
}

// Nop молча отбрасывает оповещения
type Nop struct{}

func (Nop) Alert(context.Context, string) error { return nil }
