package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"qrgen/internal/api"
	"qrgen/internal/api/handlers"
	"qrgen/internal/api/middleware"
	"qrgen/internal/engine/qr"
	"qrgen/internal/platform/audit"
	"qrgen/internal/platform/config"
	"qrgen/internal/pkg/logger"
	"qrgen/internal/web"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if closer := logger.Init(cfg.Logging); closer != nil {
		defer closer.Close()
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := qr.NewService(qr.Options{
		Size:          cfg.QR.Size,
		ElementID:     cfg.QR.ElementID,
		Filename:      cfg.QR.Filename,
		VerifyExports: cfg.QR.VerifyExports,
		CacheTTL:      cfg.Cache.TTL,
		CacheEntries:  cfg.Cache.MaxEntries,
	})
	if err != nil {
		return fmt.Errorf("qr service: %w", err)
	}

	templates, err := web.Templates()
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}

	// Background loops
	if cache := svc.Cache(); cache != nil && cfg.Cache.SweepInterval > 0 {
		go cache.Run(ctx, cfg.Cache.SweepInterval)
	}
	limiter := middleware.NewRateLimiter(map[string]int{
		middleware.LimitPreview: cfg.RateLimit.PreviewPerMinute,
		middleware.LimitExport:  cfg.RateLimit.ExportPerMinute,
	})
	go limiter.Run(ctx)

	// Handlers
	metrics := &handlers.Metrics{}
	pageCfg := handlers.PageConfig{
		Locale:       cfg.UI.Locale,
		Company:      cfg.UI.Company,
		ContactPhone: cfg.UI.ContactPhone,
	}

	deps := &api.Dependencies{
		PageHandler:    handlers.NewPageHandler(svc, templates, pageCfg, metrics),
		QRHandler:      handlers.NewQRHandler(svc, qr.MessagesFor(cfg.UI.Locale), metrics, audit.NewLogger()),
		HealthHandler:  handlers.NewHealthHandler(svc),
		MetricsHandler: handlers.NewMetricsHandler(metrics, svc.Cache()),
		RateLimiter:    limiter,
		Static:         web.Static(),
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("locale", cfg.UI.Locale).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
