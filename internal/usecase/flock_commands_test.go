package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
	"github.com/flockwise/flockwise/internal/domain/mocks"
)

func TestFlockCommandsCreate(t *testing.T) {
	tenantID := uuid.New()
	coopID := uuid.New()
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	hatch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	newService := func(flocks *mocks.MockFlockStore, coops *mocks.MockCoopStore) *FlockCommands {
		svc := NewFlockCommands(flocks, coops, testLogger)
		svc.now = fixedClock(now)
		return svc
	}

	validCmd := func() CreateFlockCommand {
		return CreateFlockCommand{CoopID: coopID, Identifier: "barn-A-01", HatchDate: hatch, Hens: 12}
	}

	t.Run("Successful Creation Appends Initial History", func(t *testing.T) {
		flocks := &mocks.MockFlockStore{}
		coops := &mocks.MockCoopStore{FindResult: domain.NewCoop(tenantID, "North Barn", "", now)}
		svc := newService(flocks, coops)

		dto, err := svc.Create(authedCtx(tenantID), validCmd())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(dto.History) != 1 || dto.History[0].Reason != domain.CompositionChangeInitial {
			t.Fatalf("expected a single Initial history entry, got %+v", dto.History)
		}
		if len(flocks.Stored) != 1 {
			t.Fatalf("expected 1 stored flock, got %d", len(flocks.Stored))
		}
		if flocks.LastExcludedID != uuid.Nil {
			t.Error("create must probe uniqueness without excluding any row")
		}
	})

	t.Run("All Counts Zero Fails Validation", func(t *testing.T) {
		flocks := &mocks.MockFlockStore{}
		svc := newService(flocks, &mocks.MockCoopStore{})

		cmd := validCmd()
		cmd.Hens, cmd.Roosters, cmd.Chicks = 0, 0, 0
		_, err := svc.Create(authedCtx(tenantID), cmd)
		if domain.CodeOf(err) != domain.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		if flocks.ExistsCalls != 0 || len(flocks.Stored) != 0 {
			t.Error("validation failure must short-circuit before any store access")
		}
	})

	t.Run("Any Single Positive Count Passes", func(t *testing.T) {
		for name, cmd := range map[string]CreateFlockCommand{
			"Hens Only":     {CoopID: coopID, Identifier: "f1", HatchDate: hatch, Hens: 1},
			"Roosters Only": {CoopID: coopID, Identifier: "f2", HatchDate: hatch, Roosters: 1},
			"Chicks Only":   {CoopID: coopID, Identifier: "f3", HatchDate: hatch, Chicks: 1},
		} {
			t.Run(name, func(t *testing.T) {
				coops := &mocks.MockCoopStore{FindResult: domain.NewCoop(tenantID, "North Barn", "", now)}
				svc := newService(&mocks.MockFlockStore{}, coops)
				if _, err := svc.Create(authedCtx(tenantID), cmd); err != nil {
					t.Errorf("expected success, got %v", err)
				}
			})
		}
	})

	t.Run("Negative Count Fails Validation", func(t *testing.T) {
		svc := newService(&mocks.MockFlockStore{}, &mocks.MockCoopStore{})
		cmd := validCmd()
		cmd.Roosters = -1
		if _, err := svc.Create(authedCtx(tenantID), cmd); domain.CodeOf(err) != domain.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("Future Hatch Date Fails Validation", func(t *testing.T) {
		svc := newService(&mocks.MockFlockStore{}, &mocks.MockCoopStore{})
		cmd := validCmd()
		cmd.HatchDate = now.AddDate(0, 0, 1)
		if _, err := svc.Create(authedCtx(tenantID), cmd); domain.CodeOf(err) != domain.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("Missing Coop Reports Not Found", func(t *testing.T) {
		svc := newService(&mocks.MockFlockStore{}, &mocks.MockCoopStore{})
		_, err := svc.Create(authedCtx(tenantID), validCmd())
		if domain.CodeOf(err) != domain.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("Duplicate Identifier In Coop Conflicts", func(t *testing.T) {
		flocks := &mocks.MockFlockStore{IdentifierTaken: true}
		coops := &mocks.MockCoopStore{FindResult: domain.NewCoop(tenantID, "North Barn", "", now)}
		svc := newService(flocks, coops)

		_, err := svc.Create(authedCtx(tenantID), validCmd())
		if domain.CodeOf(err) != domain.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
		if len(flocks.Stored) != 0 {
			t.Error("conflicting create must not reach the store")
		}
	})

	t.Run("Race Loser At Store Maps To Conflict", func(t *testing.T) {
		flocks := &mocks.MockFlockStore{StoreErr: domain.Conflict("duplicate key")}
		coops := &mocks.MockCoopStore{FindResult: domain.NewCoop(tenantID, "North Barn", "", now)}
		svc := newService(flocks, coops)

		_, err := svc.Create(authedCtx(tenantID), validCmd())
		if domain.CodeOf(err) != domain.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestFlockCommandsUpdate(t *testing.T) {
	tenantID := uuid.New()
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	hatch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	existing := func() *domain.Flock {
		return domain.NewFlock(tenantID, uuid.New(), "barn-A-01", hatch, 12, 2, 5, now.AddDate(0, -1, 0))
	}

	t.Run("Rename Excludes Own Row From Uniqueness Probe", func(t *testing.T) {
		flock := existing()
		flocks := &mocks.MockFlockStore{FindResult: flock}
		svc := NewFlockCommands(flocks, &mocks.MockCoopStore{}, testLogger)
		svc.now = fixedClock(now)

		// Renaming to the current identifier must never conflict.
		dto, err := svc.Update(authedCtx(tenantID), UpdateFlockCommand{ID: flock.ID, Identifier: "barn-A-01", HatchDate: hatch})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if flocks.LastExcludedID != flock.ID {
			t.Error("uniqueness probe must exclude the flock's own row on update")
		}
		if dto.Identifier != "barn-A-01" {
			t.Errorf("unexpected identifier: %q", dto.Identifier)
		}
	})

	t.Run("Update Never Changes Composition", func(t *testing.T) {
		flock := existing()
		flocks := &mocks.MockFlockStore{FindResult: flock}
		svc := NewFlockCommands(flocks, &mocks.MockCoopStore{}, testLogger)
		svc.now = fixedClock(now)

		dto, err := svc.Update(authedCtx(tenantID), UpdateFlockCommand{ID: flock.ID, Identifier: "barn-B-09", HatchDate: hatch})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if dto.CurrentHens != 12 || dto.CurrentRoosters != 2 || dto.CurrentChicks != 5 {
			t.Errorf("update changed composition: %+v", dto)
		}
		if len(dto.History) != 1 {
			t.Error("update must not append history entries")
		}
	})

	t.Run("Conflicting Identifier Is Rejected", func(t *testing.T) {
		flock := existing()
		flocks := &mocks.MockFlockStore{FindResult: flock, IdentifierTaken: true}
		svc := NewFlockCommands(flocks, &mocks.MockCoopStore{}, testLogger)
		svc.now = fixedClock(now)

		_, err := svc.Update(authedCtx(tenantID), UpdateFlockCommand{ID: flock.ID, Identifier: "barn-B-09", HatchDate: hatch})
		if domain.CodeOf(err) != domain.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
		if len(flocks.Updated) != 0 {
			t.Error("conflicting update must not reach the store")
		}
	})
}

func TestFlockCommandsArchive(t *testing.T) {
	tenantID := uuid.New()
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	hatch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Archive Succeeds And Persists", func(t *testing.T) {
		flock := domain.NewFlock(tenantID, uuid.New(), "barn-A-01", hatch, 12, 2, 5, now.AddDate(0, -1, 0))
		flocks := &mocks.MockFlockStore{FindResult: flock}
		svc := NewFlockCommands(flocks, &mocks.MockCoopStore{}, testLogger)
		svc.now = fixedClock(now)

		if err := svc.Archive(authedCtx(tenantID), ArchiveFlockCommand{ID: flock.ID}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if flock.IsActive {
			t.Error("expected flock to be archived")
		}
		if len(flocks.Updated) != 1 {
			t.Fatalf("expected 1 update, got %d", len(flocks.Updated))
		}
	})

	t.Run("Archiving Twice Succeeds Without Changes", func(t *testing.T) {
		flock := domain.NewFlock(tenantID, uuid.New(), "barn-A-01", hatch, 12, 2, 5, now.AddDate(0, -1, 0))
		flocks := &mocks.MockFlockStore{FindResult: flock}
		svc := NewFlockCommands(flocks, &mocks.MockCoopStore{}, testLogger)
		svc.now = fixedClock(now)

		if err := svc.Archive(authedCtx(tenantID), ArchiveFlockCommand{ID: flock.ID}); err != nil {
			t.Fatalf("first archive failed: %v", err)
		}
		historyLen := len(flock.History)
		updatedAt := flock.UpdatedAt

		if err := svc.Archive(authedCtx(tenantID), ArchiveFlockCommand{ID: flock.ID}); err != nil {
			t.Fatalf("second archive failed: %v", err)
		}
		if flock.IsActive {
			t.Error("expected flock to stay archived")
		}
		if len(flock.History) != historyLen {
			t.Error("second archive changed history")
		}
		if !flock.UpdatedAt.Equal(updatedAt) {
			t.Error("second archive changed UpdatedAt")
		}
	})

	t.Run("Foreign Tenant Flock Reports Not Found", func(t *testing.T) {
		// Store-level isolation: the row never surfaces for this tenant.
		flocks := &mocks.MockFlockStore{}
		svc := NewFlockCommands(flocks, &mocks.MockCoopStore{}, testLogger)

		err := svc.Archive(authedCtx(tenantID), ArchiveFlockCommand{ID: uuid.New()})
		if domain.CodeOf(err) != domain.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
		if err.Error() != "Flock not found" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})
}
