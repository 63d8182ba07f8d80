package qr

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(Options{})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestSessionStates(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name      string
		url       string
		want      State
		wantError bool
	}{
		{name: "Empty", url: "", want: StateEmpty},
		{name: "Invalid", url: "not a url", want: StateInvalid, wantError: true},
		{name: "Valid", url: "https://example.com", want: StateValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := svc.NewSession()
			if got := s.SetURL(tt.url); got != tt.want {
				t.Fatalf("SetURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
			if (s.Err() != nil) != tt.wantError {
				t.Errorf("Err() = %v, wantError %v", s.Err(), tt.wantError)
			}
			valid := tt.want == StateValid
			if s.PreviewVisible() != valid {
				t.Errorf("PreviewVisible() = %v, want %v", s.PreviewVisible(), valid)
			}
			if s.ExportEnabled() != valid {
				t.Errorf("ExportEnabled() = %v, want %v", s.ExportEnabled(), valid)
			}

			img, err := s.Preview()
			if err != nil {
				t.Fatalf("Preview() error = %v", err)
			}
			if (img != nil) != valid {
				t.Errorf("Preview() image present = %v, want %v", img != nil, valid)
			}
			if valid && img.Content != tt.url {
				t.Errorf("Preview() encodes %q, want %q", img.Content, tt.url)
			}
		})
	}
}

func TestSessionClearingURL(t *testing.T) {
	s := newTestService(t).NewSession()

	s.SetURL("https://example.com")
	if !s.PreviewVisible() {
		t.Fatal("expected preview for valid url")
	}

	s.SetURL("")
	if s.State() != StateEmpty {
		t.Errorf("expected empty state, got %v", s.State())
	}
	if s.Err() != nil {
		t.Errorf("expected no error after clearing, got %v", s.Err())
	}
	if s.PreviewVisible() || s.ExportEnabled() {
		t.Error("expected preview and export to be disabled after clearing")
	}
}

func TestSessionSelectColor(t *testing.T) {
	s := newTestService(t).NewSession()
	s.SetURL("https://example.com")

	for _, c := range Palette {
		if _, err := s.SelectColor(c); err != nil {
			t.Fatalf("SelectColor(%s) error = %v", c, err)
		}
		img, err := s.Preview()
		if err != nil {
			t.Fatalf("Preview() error = %v", err)
		}
		if img.Color != c {
			t.Errorf("preview color = %s, want %s", img.Color, c)
		}
		if !strings.Contains(img.SVG, `fill="`+string(c)+`"`) {
			t.Errorf("preview markup does not use %s", c)
		}
	}

	changed, err := s.SelectColor(s.Color())
	if err != nil {
		t.Fatalf("reselect error = %v", err)
	}
	if changed {
		t.Error("re-selecting the current color should be a no-op")
	}

	before := s.Color()
	if _, err := s.SelectColor("#123456"); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
	if s.Color() != before {
		t.Errorf("rejected color changed state: %s", s.Color())
	}
}

func TestSessionExportDisabled(t *testing.T) {
	svc := newTestService(t)

	for _, url := range []string{"", "not a url"} {
		s := svc.NewSession()
		s.SetURL(url)
		if _, err := s.Export(context.Background()); !errors.Is(err, ErrExportDisabled) {
			t.Errorf("Export() with %q error = %v, want ErrExportDisabled", url, err)
		}
	}
}
