package handlers

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"qrgen/internal/engine/qr"
)

// Metrics counts QR activity for the text exposition on /metrics.
type Metrics struct {
	Previews       atomic.Int64
	InvalidURLs    atomic.Int64
	Exports        atomic.Int64
	ExportFailures atomic.Int64
}

type MetricsHandler struct {
	metrics *Metrics
	cache   *qr.ExportCache
}

func NewMetricsHandler(metrics *Metrics, cache *qr.ExportCache) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, cache: cache}
}

func (h *MetricsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	counters := []struct {
		name, help string
		value      int64
	}{
		{"qrgen_previews_total", "QR previews rendered", h.metrics.Previews.Load()},
		{"qrgen_invalid_urls_total", "Requests rejected by URL validation", h.metrics.InvalidURLs.Load()},
		{"qrgen_exports_total", "PNG exports delivered", h.metrics.Exports.Load()},
		{"qrgen_export_failures_total", "PNG exports that failed", h.metrics.ExportFailures.Load()},
	}

	fmt.Fprintf(w, "# HELP qrgen_up Is the server up\n")
	fmt.Fprintf(w, "# TYPE qrgen_up gauge\n")
	fmt.Fprintf(w, "qrgen_up 1\n")

	for _, c := range counters {
		fmt.Fprintf(w, "# HELP %s %s\n", c.name, c.help)
		fmt.Fprintf(w, "# TYPE %s counter\n", c.name)
		fmt.Fprintf(w, "%s %d\n", c.name, c.value)
	}

	if h.cache != nil {
		fmt.Fprintf(w, "# HELP qrgen_export_cache_hits_total Exports served from cache\n")
		fmt.Fprintf(w, "# TYPE qrgen_export_cache_hits_total counter\n")
		fmt.Fprintf(w, "qrgen_export_cache_hits_total %d\n", h.cache.Hits())
		fmt.Fprintf(w, "# HELP qrgen_export_cache_entries Exports currently cached\n")
		fmt.Fprintf(w, "# TYPE qrgen_export_cache_entries gauge\n")
		fmt.Fprintf(w, "qrgen_export_cache_entries %d\n", h.cache.Len())
	}
}
