package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"qrgen/internal/engine/qr"
)

type HealthHandler struct {
	svc *qr.Service
}

func NewHealthHandler(svc *qr.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Check renders and exports a probe code end to end.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	s := h.svc.NewSession()
	s.SetURL("https://example.com/healthz")
	if _, err := s.Export(ctx); err != nil {
		checks["export"] = "unhealthy: " + err.Error()
	} else {
		checks["export"] = "healthy"
	}

	status := "healthy"
	for _, check := range checks {
		if len(check) >= 9 && check[:9] == "unhealthy" {
			status = "degraded"
			break
		}
	}

	response := struct {
		Status    string            `json:"status"`
		Timestamp int64             `json:"timestamp"`
		Checks    map[string]string `json:"checks"`
	}{
		Status:    status,
		Timestamp: time.Now().Unix(),
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if status == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}
