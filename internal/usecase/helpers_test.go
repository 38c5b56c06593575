package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// errTestDB stands in for an unexpected infrastructure fault.
var errTestDB = errors.New("pq: connection refused")

// authedCtx returns a context carrying an authenticated caller bound to the
// given tenant.
func authedCtx(tenantID uuid.UUID) context.Context {
	return domain.WithIdentity(context.Background(), domain.Identity{
		Authenticated: true,
		UserID:        uuid.New(),
		TenantID:      tenantID,
		HasTenant:     true,
	})
}

// anonCtx returns a context with no authenticated caller.
func anonCtx() context.Context {
	return context.Background()
}

// noTenantCtx returns an authenticated caller that resolves to no tenant.
func noTenantCtx() context.Context {
	return domain.WithIdentity(context.Background(), domain.Identity{
		Authenticated: true,
		UserID:        uuid.New(),
	})
}

// fixedClock pins a handler's clock for window and timestamp assertions.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
