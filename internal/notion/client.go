package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL    = "https://api.notion.com"
	DefaultAPIVersion = "2022-06-28"
)

// ClientOptions задает параметры клиента Notion API
type ClientOptions struct {
	BaseURL    string
	Token      string
	APIVersion string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client - минимальный клиент Notion API: чтение страницы и обновление числового свойства.
// Повторов нет, ошибка upstream сразу возвращается вызывающему.
type Client struct {
	baseURL    string
	token      string
	apiVersion string
	httpClient *http.Client
}

// APIError - ответ Notion с кодом вне диапазона 2xx
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("notion request failed: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("notion request failed: status=%d message=%s", e.StatusCode, e.Message)
}

// NewClient создает клиента Notion
func NewClient(opts ClientOptions) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	apiVersion := strings.TrimSpace(opts.APIVersion)
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		token:      strings.TrimSpace(opts.Token),
		apiVersion: apiVersion,
		httpClient: httpClient,
	}
}

// GetPage загружает страницу целиком
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodGet, pagePath(pageID), nil, &page); err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", pageID, err)
	}
	return &page, nil
}

// IncrementNumber увеличивает числовое свойство страницы на единицу и возвращает новое значение
func (c *Client) IncrementNumber(ctx context.Context, pageID, property string) (float64, error) {
	page, err := c.GetPage(ctx, pageID)
	if err != nil {
		return 0, err
	}

	current, _ := page.Properties.Number(property)
	next := current + 1

	body := map[string]any{
		"properties": map[string]any{
			property: map[string]any{"number": next},
		},
	}
	if err := c.do(ctx, http.MethodPatch, pagePath(pageID), body, nil); err != nil {
		return 0, fmt.Errorf("failed to update %q on page %s: %w", property, pageID, err)
	}

	return next, nil
}

func pagePath(pageID string) string {
	return "/v1/pages/" + url.PathEscape(strings.TrimSpace(pageID))
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	if c.token == "" {
		return fmt.Errorf("notion token is empty")
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.apiVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode notion response: %w", err)
	}
	return nil
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    strings.TrimSpace(string(body)),
	}

	var parsed struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		apiErr.Code = parsed.Code
		if strings.TrimSpace(parsed.Message) != "" {
			apiErr.Message = parsed.Message
		}
	}

	return apiErr
}
