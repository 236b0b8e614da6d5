package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix - публичный адрес сервиса для shortUrl в админском списке.
// Хранится со слешем в конце.
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base URL must be absolute http(s): %q", value)
	}
	u.RawQuery, u.Fragment = "", ""
	u.Path = strings.TrimSuffix(u.Path, "/") + "/"

	*p = URLPrefix(u.String())
	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Join дописывает путь к базовому адресу
func (p URLPrefix) Join(path string) string {
	return string(p) + strings.TrimPrefix(path, "/")
}
