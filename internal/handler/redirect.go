package handler

import (
	"net/http"
	"net/url"
)

// Redirect проверяет цель из параметра to и отвечает 302
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	target, err := h.usecase.Redirect(req.Context(), query.Get("to"), requestOrigin(req), query.Get("pageId"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	// Браузер не должен кэшировать промежуточный редирект на файл
	if query.Get("isFile") == "true" {
		w.Header().Set("Cache-Control", "no-store")
	}

	http.Redirect(w, req, target.URL, http.StatusFound)
}

// requestOrigin восстанавливает схему и хост, под которыми клиент видит сервис
func requestOrigin(req *http.Request) *url.URL {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}

	return &url.URL{Scheme: scheme, Host: req.Host}
}
