package service

import "errors"

var (
	// ErrMissingTarget возвращается, когда у /api/redirect нет параметра to
	ErrMissingTarget = errors.New("missing 'to'")
	// ErrInvalidTarget возвращается для цели, которая не является http(s) URL или путем
	ErrInvalidTarget = errors.New("invalid 'to'")

	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("forbidden")
	ErrAuthDisabled = errors.New("admin auth is not configured")
)
