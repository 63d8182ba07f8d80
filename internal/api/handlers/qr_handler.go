package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
	"qrgen/internal/api/middleware"
	"qrgen/internal/engine/qr"
	"qrgen/internal/platform/audit"
	apierrors "qrgen/internal/pkg/errors"
)

type QRHandler struct {
	svc     *qr.Service
	msgs    qr.Messages
	metrics *Metrics
	audit   *audit.Logger
}

func NewQRHandler(svc *qr.Service, msgs qr.Messages, metrics *Metrics, auditLog *audit.Logger) *QRHandler {
	return &QRHandler{svc: svc, msgs: msgs, metrics: metrics, audit: auditLog}
}

// Get returns the generator view state for ?url=&color=.
func (h *QRHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := sessionFromRequest(h.svc, r)
	if err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidColor, "color must be one of the palette swatches", qr.Palette)
		return
	}

	view, err := buildView(s, h.msgs, h.metrics)
	if err != nil {
		log.Error().Err(err).Str("request_id", middleware.RequestIDFrom(r.Context())).Msg("failed to render preview")
		apierrors.WriteError(w, http.StatusInternalServerError, apierrors.ErrCodeInternal, "failed to render preview", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// SVG returns the rendered vector image.
func (h *QRHandler) SVG(w http.ResponseWriter, r *http.Request) {
	s, ok := h.validSession(w, r)
	if !ok {
		return
	}

	img, err := s.Preview()
	if err != nil {
		h.writeRenderError(w, r, err)
		return
	}
	h.metrics.Previews.Add(1)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(img.SVG))
}

// Download exports the QR code as a PNG attachment.
func (h *QRHandler) Download(w http.ResponseWriter, r *http.Request) {
	s, ok := h.validSession(w, r)
	if !ok {
		return
	}

	out, err := s.Export(r.Context())
	if errors.Is(err, qr.ErrEncode) {
		// a validation outcome, not a failed export
		h.metrics.InvalidURLs.Add(1)
		h.writeRenderError(w, r, err)
		return
	}
	if err != nil {
		h.metrics.ExportFailures.Add(1)
		h.audit.Log(r.Context(), r, "qr.export_failed", map[string]interface{}{
			"color": s.Color().String(),
			"error": err.Error(),
		})
		h.writeRenderError(w, r, err)
		return
	}
	h.metrics.Exports.Add(1)
	h.audit.Log(r.Context(), r, "qr.export", map[string]interface{}{
		"color": s.Color().String(),
		"bytes": len(out.Data),
	})

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Notice", url.PathEscape(h.msgs.DownloadSuccess))
	w.Write(out.Data)
}

func (h *QRHandler) Palette(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Default qr.Color   `json:"default"`
		Colors  []qr.Color `json:"colors"`
	}{
		Default: qr.DefaultColor,
		Colors:  qr.Palette,
	})
}

// validSession writes the error response itself when the request cannot be
// exported.
func (h *QRHandler) validSession(w http.ResponseWriter, r *http.Request) (*qr.Session, bool) {
	s, err := sessionFromRequest(h.svc, r)
	if err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, apierrors.ErrCodeInvalidColor, "color must be one of the palette swatches", qr.Palette)
		return nil, false
	}

	switch s.State() {
	case qr.StateEmpty:
		apierrors.WriteError(w, http.StatusUnprocessableEntity, apierrors.ErrCodeExportDisabled, qr.ErrExportDisabled.Error(), nil)
		return nil, false
	case qr.StateInvalid:
		h.metrics.InvalidURLs.Add(1)
		apierrors.WriteError(w, http.StatusUnprocessableEntity, apierrors.ErrCodeInvalidURL, h.msgs.InvalidURL, nil)
		return nil, false
	}
	return s, true
}

func (h *QRHandler) writeRenderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, qr.ErrEncode):
		apierrors.WriteError(w, http.StatusUnprocessableEntity, apierrors.ErrCodeInvalidURL, h.msgs.InvalidURL, err.Error())
	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.RequestIDFrom(r.Context())).
			Msg("qr export failed")
		apierrors.WriteError(w, http.StatusInternalServerError, apierrors.ErrCodeExportFailed, h.msgs.ExportFailed, nil)
	}
}
