package handlers

import (
	"errors"
	"net/http"

	"qrgen/internal/engine/qr"
)

// View is the observable state of the generator for one URL/color pair.
type View struct {
	State          qr.State    `json:"state"`
	URL            string      `json:"url"`
	Color          qr.Color    `json:"color"`
	Error          string      `json:"error,omitempty"`
	PreviewVisible bool        `json:"preview_visible"`
	ExportEnabled  bool        `json:"export_enabled"`
	SVG            string      `json:"svg,omitempty"`
	Swatches       []qr.Swatch `json:"swatches"`
}

// sessionFromRequest replays the query string (url, color) into a fresh
// session. A clicked swatch (form field "swatch") wins over the carried
// color. An unknown color is returned as an error alongside the session,
// which keeps the default color.
func sessionFromRequest(svc *qr.Service, r *http.Request) (*qr.Session, error) {
	q := r.URL.Query()
	s := svc.NewSession()
	s.SetURL(q.Get("url"))

	c := q.Get("swatch")
	if c == "" {
		c = q.Get("color")
	}
	if c != "" {
		if _, err := s.SelectColor(qr.Color(c)); err != nil {
			return s, err
		}
	}
	return s, nil
}

func buildView(s *qr.Session, msgs qr.Messages, metrics *Metrics) (*View, error) {
	v := &View{
		State:          s.State(),
		URL:            s.URL(),
		Color:          s.Color(),
		PreviewVisible: s.PreviewVisible(),
		ExportEnabled:  s.ExportEnabled(),
		Swatches:       qr.Swatches(s.Color()),
	}

	if s.Err() != nil {
		v.Error = msgs.InvalidURL
		metrics.InvalidURLs.Add(1)
	}

	img, err := s.Preview()
	if errors.Is(err, qr.ErrEncode) {
		// too long for the highest error-correction level
		v.Error = msgs.InvalidURL
		v.PreviewVisible = false
		v.ExportEnabled = false
		return v, nil
	}
	if err != nil {
		return nil, err
	}
	if img != nil {
		v.SVG = img.SVG
		metrics.Previews.Add(1)
	}
	return v, nil
}
