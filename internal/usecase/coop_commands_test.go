package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
	"github.com/flockwise/flockwise/internal/domain/mocks"
)

func TestCoopCommandsCreate(t *testing.T) {
	tenantID := uuid.New()

	t.Run("Successful Creation", func(t *testing.T) {
		coops := &mocks.MockCoopStore{}
		svc := NewCoopCommands(coops, &mocks.MockFlockStore{}, testLogger)

		dto, err := svc.Create(authedCtx(tenantID), CreateCoopCommand{Name: "North Barn", Location: "back field"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if dto.Name != "North Barn" {
			t.Errorf("unexpected DTO name: %q", dto.Name)
		}
		if !dto.IsActive {
			t.Error("expected new coop to be active")
		}
		if len(coops.Stored) != 1 {
			t.Fatalf("expected 1 stored coop, got %d", len(coops.Stored))
		}
		if coops.Stored[0].TenantID != tenantID {
			t.Error("stored coop not bound to caller tenant")
		}
	})

	t.Run("Unauthenticated Caller", func(t *testing.T) {
		coops := &mocks.MockCoopStore{}
		svc := NewCoopCommands(coops, &mocks.MockFlockStore{}, testLogger)

		_, err := svc.Create(anonCtx(), CreateCoopCommand{Name: "North Barn"})
		if domain.CodeOf(err) != domain.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
		if err.Error() != "User is not authenticated" {
			t.Errorf("unexpected message: %q", err.Error())
		}
		if len(coops.Stored) != 0 {
			t.Error("store must not be touched on an unauthorized command")
		}
	})

	t.Run("Authenticated Without Tenant", func(t *testing.T) {
		svc := NewCoopCommands(&mocks.MockCoopStore{}, &mocks.MockFlockStore{}, testLogger)

		_, err := svc.Create(noTenantCtx(), CreateCoopCommand{Name: "North Barn"})
		if domain.CodeOf(err) != domain.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
		if err.Error() != "Tenant not found" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("Blank Name Fails Validation", func(t *testing.T) {
		coops := &mocks.MockCoopStore{}
		svc := NewCoopCommands(coops, &mocks.MockFlockStore{}, testLogger)

		_, err := svc.Create(authedCtx(tenantID), CreateCoopCommand{Name: "   "})
		if domain.CodeOf(err) != domain.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(coops.Stored) != 0 {
			t.Error("store must not be touched on a validation failure")
		}
	})

	t.Run("Name Over 100 Characters Fails Validation", func(t *testing.T) {
		svc := NewCoopCommands(&mocks.MockCoopStore{}, &mocks.MockFlockStore{}, testLogger)

		_, err := svc.Create(authedCtx(tenantID), CreateCoopCommand{Name: strings.Repeat("x", 101)})
		if domain.CodeOf(err) != domain.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("Length Bound Counts Characters Not Bytes", func(t *testing.T) {
		coops := &mocks.MockCoopStore{}
		svc := NewCoopCommands(coops, &mocks.MockFlockStore{}, testLogger)

		// 60 two-byte runes: 120 bytes, well inside the 100-character bound.
		dto, err := svc.Create(authedCtx(tenantID), CreateCoopCommand{Name: strings.Repeat("é", 60)})
		if err != nil {
			t.Fatalf("expected no error for a 60-character name, got %v", err)
		}
		if dto == nil || len(coops.Stored) != 1 {
			t.Fatal("expected the coop to be stored")
		}

		_, err = svc.Create(authedCtx(tenantID), CreateCoopCommand{Name: strings.Repeat("é", 101)})
		if domain.CodeOf(err) != domain.CodeValidation {
			t.Fatalf("expected validation error for a 101-character name, got %v", err)
		}
	})
}

func TestCoopCommandsUpdate(t *testing.T) {
	tenantID := uuid.New()
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	existing := func() *domain.Coop {
		return domain.NewCoop(tenantID, "North Barn", "", now.AddDate(0, -1, 0))
	}

	t.Run("Successful Update", func(t *testing.T) {
		coops := &mocks.MockCoopStore{FindResult: existing()}
		svc := NewCoopCommands(coops, &mocks.MockFlockStore{}, testLogger)
		svc.now = fixedClock(now)

		dto, err := svc.Update(authedCtx(tenantID), UpdateCoopCommand{ID: uuid.New(), Name: "South Barn", IsActive: true})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if dto.Name != "South Barn" {
			t.Errorf("unexpected name: %q", dto.Name)
		}
		if len(coops.Updated) != 1 {
			t.Fatalf("expected 1 update, got %d", len(coops.Updated))
		}
	})

	t.Run("Missing Coop Reports Not Found", func(t *testing.T) {
		coops := &mocks.MockCoopStore{} // FindResult nil: row invisible or absent
		svc := NewCoopCommands(coops, &mocks.MockFlockStore{}, testLogger)

		_, err := svc.Update(authedCtx(tenantID), UpdateCoopCommand{ID: uuid.New(), Name: "South Barn"})
		if domain.CodeOf(err) != domain.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
		if err.Error() != "Coop not found" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("Store Fault Is Wrapped As Failure", func(t *testing.T) {
		coops := &mocks.MockCoopStore{FindResult: existing(), UpdateErr: errTestDB}
		svc := NewCoopCommands(coops, &mocks.MockFlockStore{}, testLogger)

		_, err := svc.Update(authedCtx(tenantID), UpdateCoopCommand{ID: uuid.New(), Name: "South Barn"})
		if domain.CodeOf(err) != domain.CodeFailure {
			t.Fatalf("expected failure, got %v", err)
		}
		if strings.Contains(err.Error(), errTestDB.Error()) {
			t.Errorf("failure message leaked the store error: %q", err.Error())
		}
	})

	t.Run("Store Conflict Is Wrapped Not Passed Through", func(t *testing.T) {
		// Coops carry no uniqueness key, so a constraint error from the store
		// is an infrastructure fault here, not a caller-facing conflict.
		storeErr := domain.Conflict("a record with the same unique value already exists")
		coops := &mocks.MockCoopStore{FindResult: existing(), UpdateErr: storeErr}
		svc := NewCoopCommands(coops, &mocks.MockFlockStore{}, testLogger)

		_, err := svc.Update(authedCtx(tenantID), UpdateCoopCommand{ID: uuid.New(), Name: "South Barn"})
		if domain.CodeOf(err) != domain.CodeFailure {
			t.Fatalf("expected failure, got %v", err)
		}
		if strings.Contains(err.Error(), "unique value") {
			t.Errorf("store conflict message leaked to the caller: %q", err.Error())
		}
	})
}

func TestCoopCommandsDelete(t *testing.T) {
	tenantID := uuid.New()
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Successful Deletion Of Empty Coop", func(t *testing.T) {
		coops := &mocks.MockCoopStore{FindResult: domain.NewCoop(tenantID, "North Barn", "", now)}
		flocks := &mocks.MockFlockStore{CoopCount: 0}
		svc := NewCoopCommands(coops, flocks, testLogger)

		if err := svc.Delete(authedCtx(tenantID), DeleteCoopCommand{ID: uuid.New()}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(coops.DeletedIDs) != 1 {
			t.Fatalf("expected 1 delete, got %d", len(coops.DeletedIDs))
		}
	})

	t.Run("Occupied Coop Refuses Deletion", func(t *testing.T) {
		coops := &mocks.MockCoopStore{FindResult: domain.NewCoop(tenantID, "North Barn", "", now)}
		flocks := &mocks.MockFlockStore{CoopCount: 2}
		svc := NewCoopCommands(coops, flocks, testLogger)

		err := svc.Delete(authedCtx(tenantID), DeleteCoopCommand{ID: uuid.New()})
		if domain.CodeOf(err) != domain.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
		if len(coops.DeletedIDs) != 0 {
			t.Error("delete must not reach the store while flocks remain")
		}
	})
}
