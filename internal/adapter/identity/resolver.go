package identity

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/flockwise/flockwise/internal/adapter/metrics"
	"github.com/flockwise/flockwise/internal/domain"
)

const cacheKeyPrefix = "flockwise:apikey:"

// Resolver turns an API key into a caller identity. PostgreSQL is the source
// of truth; Redis fronts it as a TTL cache so the hot path avoids a database
// round trip per request. A Redis outage degrades to database lookups.
type Resolver struct {
	db      *sql.DB
	cache   *redis.Client
	logger  *slog.Logger
	ttl     time.Duration
	metrics *metrics.CommandMetrics
}

// NewResolver creates an API-key identity resolver.
func NewResolver(db *sql.DB, cache *redis.Client, logger *slog.Logger, ttl time.Duration, m *metrics.CommandMetrics) *Resolver {
	return &Resolver{
		db:      db,
		cache:   cache,
		logger:  logger.With("component", "identity_resolver"),
		ttl:     ttl,
		metrics: m,
	}
}

// Resolve looks an API key up and returns the caller identity. An unknown or
// inactive key yields an anonymous identity, not an error; the command layer
// owns the Unauthorized decision.
func (r *Resolver) Resolve(ctx context.Context, apiKey string) (domain.Identity, error) {
	if apiKey == "" {
		return domain.Identity{}, nil
	}

	if id, ok := r.fromCache(ctx, apiKey); ok {
		if r.metrics != nil {
			r.metrics.IdentityCacheHits.Inc()
		}
		return id, nil
	}
	if r.metrics != nil {
		r.metrics.IdentityCacheMisses.Inc()
	}

	var (
		userID   uuid.UUID
		tenantID uuid.NullUUID
	)
	query := `
        SELECT user_id, tenant_id FROM api_keys
        WHERE key = $1 AND is_active = true AND (expires_at IS NULL OR expires_at > NOW())
    `
	err := r.db.QueryRowContext(ctx, query, apiKey).Scan(&userID, &tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Identity{}, nil
	}
	if err != nil {
		r.logger.Error("failed to resolve API key", "error", err)
		return domain.Identity{}, err
	}

	id := domain.Identity{
		Authenticated: true,
		UserID:        userID,
		TenantID:      tenantID.UUID,
		HasTenant:     tenantID.Valid,
	}
	r.toCache(ctx, apiKey, id)
	return id, nil
}

func (r *Resolver) fromCache(ctx context.Context, apiKey string) (domain.Identity, bool) {
	if r.cache == nil {
		return domain.Identity{}, false
	}
	val, err := r.cache.Get(ctx, cacheKeyPrefix+apiKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("identity cache read failed, falling back to database", "error", err)
		}
		return domain.Identity{}, false
	}
	return decode(val)
}

func (r *Resolver) toCache(ctx context.Context, apiKey string, id domain.Identity) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, cacheKeyPrefix+apiKey, encode(id), r.ttl).Err(); err != nil {
		r.logger.Warn("identity cache write failed", "error", err)
	}
}

// encode/decode use a flat "user|tenant" form; tenant is empty when the key
// is not bound to a tenant.
func encode(id domain.Identity) string {
	tenant := ""
	if id.HasTenant {
		tenant = id.TenantID.String()
	}
	return id.UserID.String() + "|" + tenant
}

func decode(val string) (domain.Identity, bool) {
	parts := strings.SplitN(val, "|", 2)
	if len(parts) != 2 {
		return domain.Identity{}, false
	}
	userID, err := uuid.Parse(parts[0])
	if err != nil {
		return domain.Identity{}, false
	}
	id := domain.Identity{Authenticated: true, UserID: userID}
	if parts[1] != "" {
		tenantID, err := uuid.Parse(parts[1])
		if err != nil {
			return domain.Identity{}, false
		}
		id.TenantID = tenantID
		id.HasTenant = true
	}
	return id, true
}
