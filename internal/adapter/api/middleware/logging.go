package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/flockwise/flockwise/internal/domain"
)

// responseWriter is a wrapper that captures the HTTP status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging is a middleware factory that logs HTTP requests, including the
// resolved tenant when the caller is authenticated. Runs inside Auth so the
// identity is already on the context.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"status", rw.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if id := domain.IdentityFrom(r.Context()); id.HasTenant {
				attrs = append(attrs, "tenant_id", id.TenantID)
			}
			logger.Info("handled request", attrs...)
		})
	}
}
