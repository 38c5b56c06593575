package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommandMetrics holds all Prometheus metrics for the API service.
type CommandMetrics struct {
	CommandsTotal       *prometheus.CounterVec
	CommandDuration     *prometheus.HistogramVec
	IdentityCacheHits   prometheus.Counter
	IdentityCacheMisses prometheus.Counter
	RateLimitedRequests prometheus.Counter
}

// NewCommandMetrics initializes and registers the Prometheus metrics.
func NewCommandMetrics() *CommandMetrics {
	return &CommandMetrics{
		CommandsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flockwise",
			Subsystem: "commands",
			Name:      "total",
			Help:      "Total number of handled commands by entity, operation and result code.",
		}, []string{"entity", "operation", "result"}), // result: success, unauthorized, validation, not_found, conflict, forbidden, failure
		CommandDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flockwise",
			Subsystem: "commands",
			Name:      "duration_seconds",
			Help:      "Command handling latency by entity and operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity", "operation"}),
		IdentityCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "flockwise",
			Subsystem: "identity",
			Name:      "cache_hits_total",
			Help:      "Total number of API key cache hits.",
		}),
		IdentityCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "flockwise",
			Subsystem: "identity",
			Name:      "cache_misses_total",
			Help:      "Total number of API key cache misses.",
		}),
		RateLimitedRequests: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "flockwise",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the per-tenant rate limiter.",
		}),
	}
}
