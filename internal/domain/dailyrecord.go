package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyRecord is one day's egg count for a flock. At most one record exists
// per (flock, record date) pair.
type DailyRecord struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	FlockID    uuid.UUID `json:"flock_id"`
	RecordDate time.Time `json:"record_date"`
	EggCount   int       `json:"egg_count"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewDailyRecord constructs a record for the given flock and date.
func NewDailyRecord(tenantID, flockID uuid.UUID, recordDate time.Time, eggCount int, notes string, now time.Time) *DailyRecord {
	return &DailyRecord{
		ID:         uuid.New(),
		TenantID:   tenantID,
		FlockID:    flockID,
		RecordDate: recordDate,
		EggCount:   eggCount,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Editable reports whether the record is still inside its same-day edit
// window: the current calendar date must equal the record's creation date.
// The window is keyed to CreatedAt, not RecordDate, and is evaluated fresh on
// every attempt; once the day rolls over the record is locked for good.
func (r *DailyRecord) Editable(now time.Time) bool {
	return SameCalendarDay(r.CreatedAt, now)
}

// SameCalendarDay compares two instants by UTC calendar date.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
