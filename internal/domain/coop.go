package domain

import (
	"time"

	"github.com/google/uuid"
)

// Coop represents a single henhouse owned by a tenant. A coop owns zero or
// more flocks; it cannot be hard-deleted while any flock references it.
type Coop struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCoop constructs a coop for the given tenant. Structural validation of
// the name happens in the command validator; this only assigns identity and
// timestamps.
func NewCoop(tenantID uuid.UUID, name, location string, now time.Time) *Coop {
	return &Coop{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		Location:  location,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
