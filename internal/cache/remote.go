package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RevalidateRequest - тело запроса к хуку ревалидации фронтенда (Next.js ISR)
type RevalidateRequest struct {
	Secret string `json:"secret"`
	Tag    string `json:"tag"`
}

// RevalidateResponse - ответ хука ревалидации
type RevalidateResponse struct {
	Revalidated bool   `json:"revalidated"`
	Error       string `json:"error,omitempty"`
}

// HTTPRevalidator сбрасывает тег во внешнем кэше через HTTP хук
type HTTPRevalidator struct {
	url    string
	secret string
	client *http.Client
}

func NewHTTPRevalidator(url, secret string, timeout time.Duration) *HTTPRevalidator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPRevalidator{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: timeout},
	}
}

func (r *HTTPRevalidator) RevalidateTag(ctx context.Context, tag string) error {
	body, err := json.Marshal(RevalidateRequest{Secret: r.secret, Tag: tag})
	if err != nil {
		return fmt.Errorf("failed to marshal revalidate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create revalidate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("revalidate request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("revalidate request failed with status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var result RevalidateResponse
	if json.Unmarshal(raw, &result) == nil && !result.Revalidated && result.Error != "" {
		return fmt.Errorf("revalidate rejected: %s", result.Error)
	}

	return nil
}
