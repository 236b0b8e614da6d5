package handler

import (
	"net/http"

	"github.com/avc-dev/linktree/internal/model"
	"github.com/go-chi/chi/v5"
)

type LinksResponse struct {
	OK    bool               `json:"ok"`
	Links []model.PublicLink `json:"links"`
}

type LinkResponse struct {
	OK   bool             `json:"ok"`
	Link model.PublicLink `json:"link"`
}

// ListLinks возвращает публичный список ссылок
func (h *Handler) ListLinks(w http.ResponseWriter, req *http.Request) {
	links, err := h.usecase.ListPublicLinks(req.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, LinksResponse{OK: true, Links: links})
}

// GetLink возвращает одну включенную ссылку по slug
func (h *Handler) GetLink(w http.ResponseWriter, req *http.Request) {
	slug := chi.URLParam(req, "slug")

	link, err := h.usecase.GetPublicLink(req.Context(), slug)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, LinkResponse{OK: true, Link: link})
}
