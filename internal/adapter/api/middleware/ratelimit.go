package middleware

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/flockwise/flockwise/internal/adapter/metrics"
	"github.com/flockwise/flockwise/internal/domain"
)

// RateLimit is a middleware factory enforcing a per-tenant request rate on
// mutation routes. Anonymous callers share one bucket keyed by remote
// address; they are bounced by the authorization gate anyway, the limiter
// just keeps them from hammering it.
func RateLimit(rps rate.Limit, burst int, m *metrics.CommandMetrics) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[key]
		if !ok {
			l = rate.NewLimiter(rps, burst)
			limiters[key] = l
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.RemoteAddr
			if id := domain.IdentityFrom(r.Context()); id.HasTenant {
				key = id.TenantID.String()
			}

			if !limiterFor(key).Allow() {
				if m != nil {
					m.RateLimitedRequests.Inc()
				}
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
