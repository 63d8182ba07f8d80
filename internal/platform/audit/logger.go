package audit

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	apiContext "qrgen/internal/api/context"
)

// Entry records one user-visible action on the generator.
type Entry struct {
	Action    string
	Metadata  map[string]interface{}
	IPAddress string
	UserAgent string
	CreatedAt int64
}

// Logger writes audit entries to the structured log under the "audit"
// component. Nothing is persisted.
type Logger struct {
	logger zerolog.Logger
}

func NewLogger() *Logger {
	return &Logger{logger: log.With().Str("component", "audit").Logger()}
}

// NewLoggerTo is used by tests to capture output.
func NewLoggerTo(l zerolog.Logger) *Logger {
	return &Logger{logger: l}
}

func (l *Logger) Log(ctx context.Context, r *http.Request, action string, metadata map[string]interface{}) {
	entry := Entry{
		Action:    action,
		Metadata:  metadata,
		IPAddress: "unknown",
		UserAgent: "unknown",
		CreatedAt: time.Now().Unix(),
	}

	if r != nil {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			entry.IPAddress = host
		} else {
			entry.IPAddress = r.RemoteAddr
		}
		if ua := r.UserAgent(); ua != "" {
			entry.UserAgent = ua
		}
	}

	event := l.logger.Info().
		Str("action", entry.Action).
		Str("ip_address", entry.IPAddress).
		Str("user_agent", entry.UserAgent).
		Int64("created_at", entry.CreatedAt).
		Fields(entry.Metadata)

	if id, ok := ctx.Value(apiContext.RequestID).(string); ok {
		event = event.Str("request_id", id)
	}

	event.Msg("audit")
}
