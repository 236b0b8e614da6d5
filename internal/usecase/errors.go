package usecase

import "errors"

var (
	ErrMissingPageID    = errors.New("missing page id")
	ErrIncompleteRecord = errors.New("page has no slug or destination")
	ErrLinkNotFound     = errors.New("link not found")
)
