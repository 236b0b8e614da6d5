package handler

import (
	"cmp"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// maxWebhookBody ограничивает размер тела вебхука
const maxWebhookBody = 1 << 20

// WebhookRequest - тело вебхука Notion. Идентификатор страницы приходит
// в одном из нескольких полей в зависимости от источника.
type WebhookRequest struct {
	PageID      string `json:"page_id"`
	PageIDCamel string `json:"pageId"`
	ID          string `json:"id"`
	Entity      *struct {
		ID string `json:"id"`
	} `json:"entity,omitempty"`
}

// PageIDValue возвращает первый непустой идентификатор страницы
func (r WebhookRequest) PageIDValue() string {
	var entityID string
	if r.Entity != nil {
		entityID = r.Entity.ID
	}
	return cmp.Or(r.PageID, r.PageIDCamel, r.ID, entityID)
}

type WebhookResponse struct {
	OK   bool   `json:"ok"`
	Slug string `json:"slug"`
}

type StatusResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// NotionWebhook обрабатывает POST запрос от Notion и обновляет запись ссылки
func (h *Handler) NotionWebhook(w http.ResponseWriter, req *http.Request) {
	var request WebhookRequest
	if err := json.NewDecoder(io.LimitReader(req.Body, maxWebhookBody)).Decode(&request); err != nil {
		h.logger.Warn("failed to decode webhook body",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, err := h.usecase.IngestPage(req.Context(), request.PageIDValue())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, WebhookResponse{OK: true, Slug: rec.Slug})
}

// NotionWebhookStatus отвечает на GET для проверки доступности вебхука
func (h *Handler) NotionWebhookStatus(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, StatusResponse{OK: true, Message: "notion webhook is ready"})
}
