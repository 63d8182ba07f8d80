package qr

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrEmptyURL   = errors.New("url is required")
	ErrInvalidURL = errors.New("invalid url format")
)

// ValidateURL reports whether s is a well-formed absolute URL: it must carry
// both a scheme and a host. Leading and trailing spaces and control
// characters are ignored for parsing only.
func ValidateURL(s string) error {
	if s == "" {
		return ErrEmptyURL
	}

	trimmed := strings.TrimFunc(s, func(r rune) bool {
		return r <= 0x20
	})
	if trimmed == "" {
		return ErrInvalidURL
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return ErrInvalidURL
	}

	if u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}

	// url.Parse accepts an empty host with a port, e.g. "http://:80"
	if u.Hostname() == "" {
		return ErrInvalidURL
	}

	return nil
}
