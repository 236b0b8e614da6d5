package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/linktree/internal/service"
	"github.com/avc-dev/linktree/internal/usecase"
	"go.uber.org/zap"
)

// ErrorResponse - тело ответа при ошибке
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{OK: false, Error: message})
}

// handleError маппит ошибки usecase на HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrMissingPageID):
		h.writeError(w, http.StatusBadRequest, usecase.ErrMissingPageID.Error())
	case errors.Is(err, usecase.ErrIncompleteRecord):
		h.writeError(w, http.StatusBadRequest, usecase.ErrIncompleteRecord.Error())
	case errors.Is(err, service.ErrMissingTarget):
		h.writeError(w, http.StatusBadRequest, service.ErrMissingTarget.Error())
	case errors.Is(err, service.ErrInvalidTarget):
		h.writeError(w, http.StatusBadRequest, service.ErrInvalidTarget.Error())
	case errors.Is(err, usecase.ErrLinkNotFound):
		h.writeError(w, http.StatusNotFound, usecase.ErrLinkNotFound.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
	}
}
