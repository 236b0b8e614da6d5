package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const webhookEvent = "linktree.alert"

// WebhookPayload - тело оповещения для произвольного JSON вебхука
type WebhookPayload struct {
	Project string `json:"project"`
	Event   string `json:"event"`
	Message string `json:"message"`
}

type WebhookAlerter struct {
	url     string
	project string
	client  *http.Client
}

func NewWebhookAlerter(url, project string, client *http.Client) *WebhookAlerter {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &WebhookAlerter{
		url:     url,
		project: project,
		client:  client,
	}
}

func (a *WebhookAlerter) Alert(ctx context.Context, message string) error {
	body, err := json.Marshal(WebhookPayload{Project: a.project, Event: webhookEvent, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send alert: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("alert webhook http status %d", resp.StatusCode)
	}

	return nil
}
