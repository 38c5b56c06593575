package domain

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the already-authenticated caller context supplied by the outer
// layer (API-key middleware). A zero Identity is an anonymous caller.
type Identity struct {
	Authenticated bool
	UserID        uuid.UUID
	TenantID      uuid.UUID
	HasTenant     bool
}

type identityKey struct{}

// WithIdentity stores the caller identity on the context for handlers.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom retrieves the caller identity; absent means anonymous.
func IdentityFrom(ctx context.Context) Identity {
	id, _ := ctx.Value(identityKey{}).(Identity)
	return id
}
