package handler

import (
	"net/http"

	"github.com/avc-dev/linktree/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminLinksResponse struct {
	OK    bool              `json:"ok"`
	Links []model.AdminLink `json:"links"`
}

// AdminListLinks возвращает все записи, включая отключенные
func (h *Handler) AdminListLinks(w http.ResponseWriter, req *http.Request) {
	links, err := h.usecase.ListAllLinks(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, AdminLinksResponse{OK: true, Links: links})
}

// AdminSyncPage вручную повторяет загрузку страницы Notion
func (h *Handler) AdminSyncPage(w http.ResponseWriter, req *http.Request) {
	pageID := chi.URLParam(req, "pageId")

	rec, err := h.usecase.IngestPage(req.Context(), pageID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("page synced manually",
		zap.String("page_id", pageID),
		zap.String("slug", rec.Slug),
	)

	h.writeJSON(w, http.StatusOK, WebhookResponse{OK: true, Slug: rec.Slug})
}
