package service

import (
	"net/url"
	"strings"

	"github.com/avc-dev/linktree/internal/model"
	"go.uber.org/zap"
)

const defaultUTMSource = "linktree"

// LinkResolver превращает сохраненную запись в безопасный href.
// Resolve не выполняет ввода-вывода и никогда не паникует.
type LinkResolver struct {
	logger *zap.Logger
}

// NewLinkResolver создает новый экземпляр LinkResolver
func NewLinkResolver(logger *zap.Logger) *LinkResolver {
	return &LinkResolver{
		logger: logger,
	}
}

// Resolve вычисляет итоговый адрес записи и признак внешней ссылки
func (r *LinkResolver) Resolve(rec model.RedirectRecord) model.ResolvedLink {
	dest := appendUTM(rec.Destination, rec.Slug, rec.UTM)
	dest = sanitize(dest)

	dest, external := classify(dest)
	if !external {
		if inner, ok := unwrapRedirect(dest); ok {
			dest, external = classify(inner)
		}
	}

	if rec.RedirectExternal {
		external = true
	}

	if !safeDestination(dest) {
		fallback := "#"
		if rec.Slug != "" {
			fallback = "/" + rec.Slug
		}
		r.logger.Warn("invalid link destination, falling back",
			zap.String("slug", rec.Slug),
			zap.String("destination", rec.Destination),
			zap.String("fallback", fallback),
		)
		return model.ResolvedLink{Destination: fallback, IsExternal: false}
	}

	return model.ResolvedLink{Destination: dest, IsExternal: external}
}

// appendUTM добавляет utm_source=linktree, utm_campaign=<slug> и utm_medium записи
// к абсолютному http(s) адресу, если их там еще нет. Остальные адреса возвращаются как есть.
func appendUTM(dest, slug string, utm model.UTM) string {
	trimmed := strings.TrimSpace(invisible.Replace(dest))
	if !hasHTTPScheme(trimmed) {
		return dest
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return dest
	}

	query := u.Query()
	params := make(url.Values)
	// source и campaign фиксированы для всех ссылок; из записи берется только medium
	if !query.Has("utm_source") {
		params.Set("utm_source", defaultUTMSource)
	}
	if !query.Has("utm_campaign") && slug != "" {
		params.Set("utm_campaign", slug)
	}
	if !query.Has("utm_medium") && utm.Medium != "" {
		params.Set("utm_medium", utm.Medium)
	}
	if len(params) == 0 {
		return trimmed
	}

	// Исходный query сохраняется байт в байт, метки дописываются в конец
	if u.RawQuery == "" {
		u.RawQuery = params.Encode()
	} else {
		u.RawQuery += "&" + params.Encode()
	}

	return u.String()
}

// classify нормализует адрес по префиксу и сообщает, внешний ли он
func classify(dest string) (string, bool) {
	switch {
	case dest == "":
		return "", false
	case hasHTTPScheme(dest):
		return dest, true
	case strings.HasPrefix(dest, "//"):
		return "https:" + dest, true
	case strings.HasPrefix(dest, "/"):
		return dest, false
	default:
		return "https://" + dest, true
	}
}

// unwrapRedirect достает цель из внутренней обертки /api/redirect?to=...
func unwrapRedirect(dest string) (string, bool) {
	u, err := url.Parse(dest)
	if err != nil || u.Path != redirectPath {
		return "", false
	}

	to := sanitize(decodeTarget(u.Query().Get("to")))
	if to == "" {
		return "", false
	}

	return to, true
}

func safeDestination(dest string) bool {
	if hasHTTPScheme(dest) {
		_, ok := parseAbsolute(dest)
		return ok
	}

	return safeRelative(dest)
}
