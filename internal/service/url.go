package service

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

const redirectPath = "/api/redirect"

// domainLike - эвристика для строк вида example.com/x без схемы
var domainLike = regexp.MustCompile(`(?i)^[a-z0-9-]+(\.[a-z0-9-]+)*\.[a-z]{2,}(:\d{1,5})?([/?#].*)?$`)

var invisible = strings.NewReplacer("\uFEFF", "", "\u00A0", "")

// sanitize убирает BOM, NBSP и любые пробельные символы
func sanitize(s string) string {
	return strings.Join(strings.Fields(invisible.Replace(s)), "")
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// decodeTarget раскодирует значение to, закодированное как относительный путь (%2F...)
// или как абсолютный URL целиком (https%3A...). Остальные значения не трогаются,
// чтобы не сломать подписи в query.
func decodeTarget(raw string) string {
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "%2f") &&
		!strings.HasPrefix(lower, "http%3a") &&
		!strings.HasPrefix(lower, "https%3a") {
		return raw
	}

	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return decoded
}

// parseAbsolute строго проверяет http(s) URL: схема, непустой корректный хост, без userinfo
func parseAbsolute(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	if u.User != nil || u.Opaque != "" {
		return nil, false
	}
	if !validHostname(u.Hostname()) {
		return nil, false
	}

	return u, true
}

func validHostname(host string) bool {
	if host == "" || strings.HasPrefix(host, ".") || strings.Contains(host, "..") {
		return false
	}
	if strings.Contains(host, ":") {
		// IPv6 литерал уже без скобок
		return strings.Trim(host, "0123456789abcdefABCDEF:.") == ""
	}

	for _, r := range host {
		if r != '-' && r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// safeRelative проверяет путь от корня, который браузер не примет за другой хост
func safeRelative(path string) bool {
	return strings.HasPrefix(path, "/") &&
		!strings.HasPrefix(path, "//") &&
		!strings.HasPrefix(path, `/\`)
}
