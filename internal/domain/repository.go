package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store interfaces abstract persistence per entity kind. Lookup methods that
// take a tenantID are row-isolated: rows belonging to other tenants never
// surface, a missing or foreign row is simply (nil, nil). Implementations
// return plain errors for infrastructure faults, except uniqueness
// violations, which they translate to ErrConflict at the boundary.

// CoopStore persists coops, scoped to a tenant on every operation.
type CoopStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Coop, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*Coop, error)
	Store(ctx context.Context, c *Coop) error
	Update(ctx context.Context, c *Coop) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// FlockStore persists flocks and answers the identifier-uniqueness and
// coop-occupancy probes the handlers need.
type FlockStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Flock, error)
	FindByCoop(ctx context.Context, tenantID, coopID uuid.UUID) ([]*Flock, error)
	// IdentifierExists reports whether another non-deleted flock in the coop
	// already uses the identifier (case-sensitive exact match). Pass uuid.Nil
	// as excludeID on create; on update pass the flock's own ID so renaming
	// to the current value is not a false conflict.
	IdentifierExists(ctx context.Context, tenantID, coopID uuid.UUID, identifier string, excludeID uuid.UUID) (bool, error)
	CountByCoop(ctx context.Context, tenantID, coopID uuid.UUID) (int, error)
	Store(ctx context.Context, f *Flock) error
	Update(ctx context.Context, f *Flock) error
}

// DailyRecordStore persists daily egg records.
type DailyRecordStore interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*DailyRecord, error)
	FindByFlock(ctx context.Context, tenantID, flockID uuid.UUID) ([]*DailyRecord, error)
	// ExistsForDate probes the (flockID, recordDate) uniqueness key, by
	// calendar date. excludeID as in FlockStore.IdentifierExists.
	ExistsForDate(ctx context.Context, tenantID, flockID uuid.UUID, recordDate time.Time, excludeID uuid.UUID) (bool, error)
	Store(ctx context.Context, r *DailyRecord) error
	Update(ctx context.Context, r *DailyRecord) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// PurchaseStore persists purchases. FindByID is intentionally not
// tenant-filtered: the purchase handlers resolve the row first and enforce
// ownership themselves, reporting Forbidden on a tenant mismatch.
type PurchaseStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*Purchase, error)
	Store(ctx context.Context, p *Purchase) error
	Update(ctx context.Context, p *Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}
