package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// TokenValidator проверяет токен администратора и возвращает его subject
type TokenValidator interface {
	ValidateJWT(token string) (string, error)
}

type adminSubjectKey struct{}

// AuthMiddleware представляет миддлвар для аутентификации администратора
type AuthMiddleware struct {
	validator TokenValidator
	logger    *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(validator TokenValidator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		logger:    logger,
	}
}

// RequireAdmin пропускает только запросы с действительным Bearer токеном
// администратора и добавляет его subject в контекст
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		subject, err := am.validator.ValidateJWT(token)
		if err != nil {
			am.logger.Warn("admin token rejected",
				zap.Error(err),
				zap.String("remote_addr", r.RemoteAddr),
			)
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), adminSubjectKey{}, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminSubject извлекает subject администратора из контекста запроса
func GetAdminSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(adminSubjectKey{}).(string)
	return subject, ok
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
