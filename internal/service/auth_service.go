package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AdminRole - роль, которая дает доступ к /api/admin
	AdminRole = "admin"

	defaultTokenTTL = 24 * time.Hour
)

// AuthService выпускает и проверяет токены администратора
type AuthService struct {
	jwtSecret []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService.
// С пустым секретом любой токен отклоняется.
func NewAuthService(jwtSecret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		now:       time.Now,
	}
}

// GenerateJWT создает токен администратора для subject
func (a *AuthService) GenerateJWT(subject string) (string, error) {
	if len(a.jwtSecret) == 0 {
		return "", ErrAuthDisabled
	}

	now := a.now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": AdminRole,
		"exp":  now.Add(a.ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет токен и возвращает subject, если роль - admin
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	if len(a.jwtSecret) == 0 {
		return "", ErrAuthDisabled
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	}, jwt.WithTimeFunc(a.now), jwt.WithExpirationRequired())

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	if role, _ := claims["role"].(string); role != AdminRole {
		return "", ErrForbidden
	}

	subject, _ := claims["sub"].(string)
	return subject, nil
}
