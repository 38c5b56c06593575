package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewFlock(t *testing.T) {
	now := time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC)
	hatch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tenantID := uuid.New()
	coopID := uuid.New()

	f := NewFlock(tenantID, coopID, "barn-A-01", hatch, 12, 2, 5, now)

	if f.ID == uuid.Nil {
		t.Error("expected flock ID to be assigned")
	}
	if !f.IsActive {
		t.Error("expected new flock to be active")
	}
	if len(f.History) != 1 {
		t.Fatalf("expected exactly 1 history entry, got %d", len(f.History))
	}
	h := f.History[0]
	if h.Reason != CompositionChangeInitial {
		t.Errorf("expected initial history reason %q, got %q", CompositionChangeInitial, h.Reason)
	}
	if h.Hens != 12 || h.Roosters != 2 || h.Chicks != 5 {
		t.Errorf("initial history entry does not mirror starting composition: %+v", h)
	}
	if !h.ChangeDate.Equal(now) {
		t.Errorf("expected history change date %v, got %v", now, h.ChangeDate)
	}
}

func TestFlockArchive(t *testing.T) {
	now := time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC)
	f := NewFlock(uuid.New(), uuid.New(), "barn-A-01", now.AddDate(0, -1, 0), 10, 1, 0, now)

	t.Run("Archive Flips Active Off", func(t *testing.T) {
		f.Archive(now.Add(time.Hour))
		if f.IsActive {
			t.Error("expected flock to be archived")
		}
	})

	t.Run("Archive Is Idempotent", func(t *testing.T) {
		before := *f
		f.Archive(now.Add(2 * time.Hour))

		if f.IsActive {
			t.Error("expected flock to stay archived")
		}
		if !f.UpdatedAt.Equal(before.UpdatedAt) {
			t.Error("expected second archive to leave UpdatedAt unchanged")
		}
		if len(f.History) != len(before.History) {
			t.Error("expected archive to leave history untouched")
		}
		if f.CurrentHens != before.CurrentHens || f.CurrentRoosters != before.CurrentRoosters || f.CurrentChicks != before.CurrentChicks {
			t.Error("expected archive to leave composition untouched")
		}
		if f.Identifier != before.Identifier {
			t.Error("expected archive to leave identifier untouched")
		}
	})
}

func TestFlockRenameDoesNotTouchComposition(t *testing.T) {
	now := time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC)
	f := NewFlock(uuid.New(), uuid.New(), "barn-A-01", now.AddDate(0, -1, 0), 10, 1, 3, now)

	f.Rename("barn-B-02", now.AddDate(0, -2, 0), now.Add(time.Hour))

	if f.Identifier != "barn-B-02" {
		t.Errorf("expected identifier to change, got %q", f.Identifier)
	}
	if f.CurrentHens != 10 || f.CurrentRoosters != 1 || f.CurrentChicks != 3 {
		t.Error("expected rename to leave composition untouched")
	}
	if len(f.History) != 1 {
		t.Error("expected rename to leave history untouched")
	}
}
