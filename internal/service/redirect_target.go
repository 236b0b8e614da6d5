package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/linktree/internal/model"
)

// NormalizeRedirectTarget проверяет значение to для /api/redirect.
// raw - уже раскодированное значение query-параметра, origin - адрес самого сервиса.
// Абсолютные URL возвращаются без перекодирования; относительные пути проверяются
// относительно origin и возвращаются как путь.
func NormalizeRedirectTarget(raw string, origin *url.URL) (model.RedirectTarget, error) {
	target := strings.TrimSpace(raw)
	if target == "" {
		return model.RedirectTarget{}, ErrMissingTarget
	}

	target = decodeTarget(target)

	switch {
	case strings.HasPrefix(target, "//"):
		target = "https:" + target
	case strings.HasPrefix(target, "/"):
		return normalizeRelative(target, origin)
	case hasHTTPScheme(target):
	case domainLike.MatchString(target):
		target = "https://" + target
	default:
		return model.RedirectTarget{}, fmt.Errorf("%w: unsupported target %q", ErrInvalidTarget, target)
	}

	if _, ok := parseAbsolute(target); !ok {
		return model.RedirectTarget{}, fmt.Errorf("%w: malformed URL %q", ErrInvalidTarget, target)
	}

	return model.RedirectTarget{URL: target}, nil
}

func normalizeRelative(path string, origin *url.URL) (model.RedirectTarget, error) {
	if origin == nil {
		origin = &url.URL{Scheme: "http", Host: "localhost"}
	}
	if !safeRelative(path) {
		return model.RedirectTarget{}, fmt.Errorf("%w: unsafe path %q", ErrInvalidTarget, path)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return model.RedirectTarget{}, fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	resolved := origin.ResolveReference(ref)
	if resolved.Host != origin.Host || resolved.Scheme != origin.Scheme {
		return model.RedirectTarget{}, fmt.Errorf("%w: path leaves origin", ErrInvalidTarget)
	}

	relative := resolved.EscapedPath()
	if !safeRelative(relative) {
		return model.RedirectTarget{}, fmt.Errorf("%w: unsafe path %q", ErrInvalidTarget, relative)
	}
	if resolved.RawQuery != "" {
		relative += "?" + resolved.RawQuery
	}
	if resolved.Fragment != "" {
		relative += "#" + resolved.EscapedFragment()
	}

	return model.RedirectTarget{URL: relative, Relative: true}, nil
}
