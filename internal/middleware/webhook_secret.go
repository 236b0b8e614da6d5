package middleware

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

// WebhookSecretHeader - заголовок с общим секретом вебхука
const WebhookSecretHeader = "x-webhook-secret"

// WebhookSecret пропускает только запросы с верным общим секретом.
// Пустой секрет на сервере отклоняет все запросы.
func WebhookSecret(secret string, logger *zap.Logger) func(next http.Handler) http.Handler {
	expected := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := []byte(r.Header.Get(WebhookSecretHeader))

			if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
				logger.Warn("webhook secret mismatch",
					zap.String("remote_addr", r.RemoteAddr),
					zap.Bool("secret_configured", len(expected) > 0),
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
