package qr

import (
	"errors"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "Empty", url: "", wantErr: ErrEmptyURL},
		{name: "HTTPS", url: "https://example.com", wantErr: nil},
		{name: "HTTP With Path", url: "http://example.com/a/b?c=d#e", wantErr: nil},
		{name: "Custom Scheme", url: "ftp://files.example.com", wantErr: nil},
		{name: "Port", url: "https://example.com:8443", wantErr: nil},
		{name: "Surrounding Spaces", url: "  https://example.com ", wantErr: nil},
		{name: "Plain Text", url: "not a url", wantErr: ErrInvalidURL},
		{name: "Missing Scheme", url: "example.com", wantErr: ErrInvalidURL},
		{name: "Missing Host", url: "https://", wantErr: ErrInvalidURL},
		{name: "Port Only", url: "http://:80", wantErr: ErrInvalidURL},
		{name: "Space In Host", url: "https://exa mple.com", wantErr: ErrInvalidURL},
		{name: "Bad Port", url: "https://example.com:port", wantErr: ErrInvalidURL},
		{name: "Only Spaces", url: "   ", wantErr: ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateURL(%q) error = %v, want %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
