package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/flockwise/flockwise/internal/domain"
)

const APIKeyHeader = "X-API-Key"

// IdentityResolver resolves an API key into a caller identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, apiKey string) (domain.Identity, error)
}

// Auth is a middleware factory that attaches the resolved caller identity to
// the request context. It never rejects the request itself: unauthenticated
// callers proceed with an anonymous identity and the command layer's
// authorization gate turns them away. A resolver fault also degrades to
// anonymous so the failure surfaces as Unauthorized, not a 500.
func Auth(resolver IdentityResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)

			id, err := resolver.Resolve(r.Context(), apiKey)
			if err != nil {
				logger.Error("identity resolution failed", "error", err, "remote_addr", r.RemoteAddr)
				id = domain.Identity{}
			}

			ctx := domain.WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
