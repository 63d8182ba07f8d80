package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"qrgen/internal/api/middleware"
	"qrgen/internal/engine/qr"
)

type PageConfig struct {
	Locale       string
	Company      string
	ContactPhone string
}

type PageHandler struct {
	svc       *qr.Service
	templates *template.Template
	cfg       PageConfig
	msgs      qr.Messages
	metrics   *Metrics
}

func NewPageHandler(svc *qr.Service, templates *template.Template, cfg PageConfig, metrics *Metrics) *PageHandler {
	if cfg.Locale == "" {
		cfg.Locale = qr.DefaultLocale
	}
	msgs := qr.MessagesFor(cfg.Locale)
	if cfg.Company == "" {
		cfg.Company = msgs.Company
	}
	return &PageHandler{
		svc:       svc,
		templates: templates,
		cfg:       cfg,
		msgs:      msgs,
		metrics:   metrics,
	}
}

type pageData struct {
	Locale     string
	Messages   qr.Messages
	Company    string
	Action     string
	Filename   string
	View       *View
	Preview    template.HTML
	ContactURL string
	Year       int
}

func (h *PageHandler) Generator(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "generator", "/")
}

// Landing is the generator with the contact link and footer.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "landing", "/landing")
}

func (h *PageHandler) ContactURL() string {
	return "https://wa.me/" + h.cfg.ContactPhone
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name, action string) {
	// an unknown color keeps the default swatch
	s, _ := sessionFromRequest(h.svc, r)

	view, err := buildView(s, h.msgs, h.metrics)
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.RequestIDFrom(r.Context())).Msg("failed to render preview")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := pageData{
		Locale:     h.cfg.Locale,
		Messages:   h.msgs,
		Company:    h.cfg.Company,
		Action:     action,
		Filename:   h.svc.Filename(),
		View:       view,
		Preview:    template.HTML(view.SVG),
		ContactURL: h.ContactURL(),
		Year:       time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to execute template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
