package api

import (
	"context"
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"
	apiContext "qrgen/internal/api/context"
	"qrgen/internal/api/handlers"
	"qrgen/internal/api/middleware"
	"qrgen/internal/pkg/errors"
)

type Dependencies struct {
	PageHandler    *handlers.PageHandler
	QRHandler      *handlers.QRHandler
	HealthHandler  *handlers.HealthHandler
	MetricsHandler *handlers.MetricsHandler
	RateLimiter    *middleware.RateLimiter
	Static         fs.FS
}

func NewRouter(deps *Dependencies) http.Handler {
	router := httprouter.New()

	limit := deps.RateLimiter.Handle

	// Pages
	router.GET("/", wrap(deps.PageHandler.Generator))
	router.GET("/landing", wrap(deps.PageHandler.Landing))
	router.ServeFiles("/static/*filepath", http.FS(deps.Static))

	// QR API
	router.GET("/api/v1/palette", wrap(deps.QRHandler.Palette))
	router.GET("/api/v1/qr",
		chain(deps.QRHandler.Get, limit(middleware.LimitPreview)))
	router.GET("/api/v1/qr/svg",
		chain(deps.QRHandler.SVG, limit(middleware.LimitPreview)))
	router.GET("/api/v1/qr/download",
		chain(deps.QRHandler.Download, limit(middleware.LimitExport)))

	// Operations
	router.GET("/healthz", wrap(deps.HealthHandler.Check))
	router.GET("/metrics", wrap(deps.MetricsHandler.Export))

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Resource not found", nil)
	})

	return middleware.RequestLogger(router)
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) httprouter.Handle {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return wrap(handler)
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx := context.WithValue(r.Context(), apiContext.Params, ps)
		handler(w, r.WithContext(ctx))
	}
}
