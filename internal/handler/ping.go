package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Ping проверяет соединение с хранилищем
func (h *Handler) Ping(w http.ResponseWriter, req *http.Request) {
	if h.pinger == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.pinger.Ping(req.Context()); err != nil {
		h.logger.Error("storage ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
