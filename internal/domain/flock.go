package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompositionChangeInitial is the reason recorded on the history entry that
// every flock is born with.
const CompositionChangeInitial = "Initial"

// CompositionChange is one append-only history record of a flock's animal
// counts at a point in time.
type CompositionChange struct {
	Hens       int       `json:"hens"`
	Roosters   int       `json:"roosters"`
	Chicks     int       `json:"chicks"`
	Reason     string    `json:"reason"`
	ChangeDate time.Time `json:"change_date"`
	Notes      string    `json:"notes,omitempty"`
}

// Flock is a group of birds living in one coop. The identifier is unique
// within the owning coop among non-deleted flocks. History is append-only;
// archiving never touches it.
type Flock struct {
	ID              uuid.UUID           `json:"id"`
	TenantID        uuid.UUID           `json:"tenant_id"`
	CoopID          uuid.UUID           `json:"coop_id"`
	Identifier      string              `json:"identifier"`
	HatchDate       time.Time           `json:"hatch_date"`
	CurrentHens     int                 `json:"current_hens"`
	CurrentRoosters int                 `json:"current_roosters"`
	CurrentChicks   int                 `json:"current_chicks"`
	IsActive        bool                `json:"is_active"`
	History         []CompositionChange `json:"history"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// NewFlock constructs an active flock and appends the mandatory initial
// history entry mirroring the starting composition, dated at the creation
// instant.
func NewFlock(tenantID, coopID uuid.UUID, identifier string, hatchDate time.Time, hens, roosters, chicks int, now time.Time) *Flock {
	return &Flock{
		ID:              uuid.New(),
		TenantID:        tenantID,
		CoopID:          coopID,
		Identifier:      identifier,
		HatchDate:       hatchDate,
		CurrentHens:     hens,
		CurrentRoosters: roosters,
		CurrentChicks:   chicks,
		IsActive:        true,
		History: []CompositionChange{{
			Hens:       hens,
			Roosters:   roosters,
			Chicks:     chicks,
			Reason:     CompositionChangeInitial,
			ChangeDate: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename sets a new identifier and hatch date. Composition counts and history
// are deliberately not reachable from here; no update command may change them.
func (f *Flock) Rename(identifier string, hatchDate time.Time, now time.Time) {
	f.Identifier = identifier
	f.HatchDate = hatchDate
	f.UpdatedAt = now
}

// Archive flips the flock to the archived state. It is idempotent: archiving
// an already-archived flock succeeds and changes nothing. Composition,
// identifier, and history are never altered by archiving.
func (f *Flock) Archive(now time.Time) {
	if !f.IsActive {
		return
	}
	f.IsActive = false
	f.UpdatedAt = now
}
