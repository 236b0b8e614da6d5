package app

import (
	"github.com/avc-dev/linktree/internal/config"
	"github.com/avc-dev/linktree/internal/handler"
	"github.com/avc-dev/linktree/internal/middleware"
	"github.com/avc-dev/linktree/internal/ratelimit"
	"github.com/avc-dev/linktree/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, limiter ratelimit.Limiter, authService *service.AuthService, cfg *config.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	authMiddleware := middleware.NewAuthMiddleware(authService, logger)

	// Routes
	r.Get("/ping", h.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Get("/redirect", h.Redirect)
		r.Get("/links", h.ListLinks)
		r.Get("/links/{slug}", h.GetLink)

		// Лимит проверяется раньше секрета
		r.Get("/notion-webhook", h.NotionWebhookStatus)
		r.With(
			middleware.RateLimit(limiter, logger),
			middleware.WebhookSecret(cfg.Webhook.Secret, logger),
		).Post("/notion-webhook", h.NotionWebhook)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMiddleware.RequireAdmin)
			r.Get("/links", h.AdminListLinks)
			r.Post("/links/{pageId}/sync", h.AdminSyncPage)
		})
	})

	return r
}
