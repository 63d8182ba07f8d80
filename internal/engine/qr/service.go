package qr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type Options struct {
	Size          int
	ElementID     string
	Filename      string
	VerifyExports bool
	CacheTTL      time.Duration
	CacheEntries  int
}

// Service wires the renderer, exporter and export cache together and hands
// out sessions.
type Service struct {
	renderer *Renderer
	exporter *Exporter
	cache    *ExportCache
}

func NewService(opts Options) (*Service, error) {
	renderer, err := NewRenderer(opts.Size, opts.ElementID)
	if err != nil {
		return nil, err
	}

	svc := &Service{
		renderer: renderer,
		exporter: NewExporter(opts.Filename, opts.VerifyExports),
	}
	if opts.CacheTTL > 0 {
		svc.cache = NewExportCache(opts.CacheTTL, opts.CacheEntries)
	}
	return svc, nil
}

// NewSession starts a session in StateEmpty with the default color.
func (s *Service) NewSession() *Session {
	return &Session{svc: s, color: DefaultColor, state: StateEmpty}
}

func (s *Service) Cache() *ExportCache {
	return s.cache
}

func (s *Service) Filename() string {
	return s.exporter.Filename()
}

func (s *Service) export(ctx context.Context, url string, fg Color) (*Export, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(url, fg); ok {
			return cached, nil
		}
	}

	img, err := s.renderer.Render(url, fg)
	if err != nil {
		return nil, err
	}

	out, err := s.exporter.Export(ctx, img)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(url, fg, out)
	}

	log.Debug().
		Str("color", fg.String()).
		Int("bytes", len(out.Data)).
		Msg("qr exported")

	return out, nil
}
