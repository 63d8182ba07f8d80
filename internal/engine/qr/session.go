package qr

import (
	"context"
	"errors"
)

// State is the observable state of a Session.
type State int

const (
	StateEmpty State = iota
	StateInvalid
	StateValid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateInvalid:
		return "invalid"
	case StateValid:
		return "valid"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var ErrExportDisabled = errors.New("export is disabled until a valid url is entered")

// Session holds the URL and color for one interaction. It is not safe for
// concurrent use; every request builds its own.
type Session struct {
	svc   *Service
	url   string
	color Color
	state State
}

func (s *Session) URL() string {
	return s.url
}

func (s *Session) Color() Color {
	return s.color
}

func (s *Session) State() State {
	return s.state
}

// SetURL replaces the URL text and re-evaluates the state.
func (s *Session) SetURL(v string) State {
	s.url = v
	switch {
	case v == "":
		s.state = StateEmpty
	case ValidateURL(v) != nil:
		s.state = StateInvalid
	default:
		s.state = StateValid
	}
	return s.state
}

// SelectColor switches the foreground color. It reports whether the color
// changed; re-selecting the current color is a no-op.
func (s *Session) SelectColor(c Color) (bool, error) {
	canonical, err := ParseColor(string(c))
	if err != nil {
		return false, err
	}
	if canonical == s.color {
		return false, nil
	}
	s.color = canonical
	return true, nil
}

// Err is the validation error, present only in StateInvalid.
func (s *Session) Err() error {
	if s.state == StateInvalid {
		return ErrInvalidURL
	}
	return nil
}

func (s *Session) PreviewVisible() bool {
	return s.state == StateValid
}

func (s *Session) ExportEnabled() bool {
	return s.state == StateValid
}

// Preview renders the current URL, or returns nil when nothing should be
// shown.
func (s *Session) Preview() (*Image, error) {
	if !s.PreviewVisible() {
		return nil, nil
	}
	return s.svc.renderer.Render(s.url, s.color)
}

func (s *Session) Export(ctx context.Context) (*Export, error) {
	if !s.ExportEnabled() {
		return nil, ErrExportDisabled
	}
	return s.svc.export(ctx, s.url, s.color)
}
