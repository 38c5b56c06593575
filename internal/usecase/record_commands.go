package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// recordConflictMessage is the stable conflict text for the
// (flock, record date) uniqueness key.
const recordConflictMessage = "A daily record already exists for this flock on the specified date"

// sameDayLockMessage is returned when the record's same-day edit window has
// closed.
const sameDayLockMessage = "Record can only be modified on the day it was created (same-day edit restriction)"

// CreateDailyRecordCommand records one day's egg count for a flock.
type CreateDailyRecordCommand struct {
	FlockID    uuid.UUID
	RecordDate time.Time
	EggCount   int
	Notes      string
}

// UpdateDailyRecordCommand edits a record while it is still inside its
// same-day edit window.
type UpdateDailyRecordCommand struct {
	ID         uuid.UUID
	RecordDate time.Time
	EggCount   int
	Notes      string
}

// DeleteDailyRecordCommand deletes a record, subject to the same window.
type DeleteDailyRecordCommand struct {
	ID uuid.UUID
}

// DailyRecordCommands handles daily-record mutation commands.
type DailyRecordCommands struct {
	records domain.DailyRecordStore
	flocks  domain.FlockStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewDailyRecordCommands creates the daily-record command handler.
func NewDailyRecordCommands(records domain.DailyRecordStore, flocks domain.FlockStore, logger *slog.Logger) *DailyRecordCommands {
	return &DailyRecordCommands{records: records, flocks: flocks, logger: logger, now: time.Now}
}

func (c CreateDailyRecordCommand) validate(now time.Time) error {
	var v violations
	v.requireID("flock_id", c.FlockID)
	v.requireDateNotFuture("record_date", c.RecordDate, now)
	v.nonNegative("egg_count", c.EggCount)
	v.maxLen("notes", c.Notes, maxNotesLen)
	return v.asError("invalid daily record")
}

// Create validates the command, resolves the flock, checks the
// (flock, record date) uniqueness key, and persists the record.
func (s *DailyRecordCommands) Create(ctx context.Context, cmd CreateDailyRecordCommand) (*DailyRecordDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if err := cmd.validate(now); err != nil {
		return nil, err
	}

	flock, err := s.flocks.FindByID(ctx, tenantID, cmd.FlockID)
	if err != nil {
		s.logger.Error("failed to load flock", "error", err, "flock_id", cmd.FlockID)
		return nil, domain.Failuref(err, "create", "daily record")
	}
	if flock == nil {
		return nil, domain.NotFound("Flock")
	}

	recordDate := dateOnly(cmd.RecordDate)
	taken, err := s.records.ExistsForDate(ctx, tenantID, cmd.FlockID, recordDate, uuid.Nil)
	if err != nil {
		s.logger.Error("failed to probe record date", "error", err, "flock_id", cmd.FlockID)
		return nil, domain.Failuref(err, "create", "daily record")
	}
	if taken {
		return nil, domain.Conflict(recordConflictMessage)
	}

	record := domain.NewDailyRecord(tenantID, cmd.FlockID, recordDate, cmd.EggCount, cmd.Notes, now)
	if err := s.records.Store(ctx, record); err != nil {
		// A racing create for the same key loses at the store's constraint.
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict(recordConflictMessage)
		}
		s.logger.Error("failed to store daily record", "error", err, "flock_id", cmd.FlockID)
		return nil, domain.Failuref(err, "create", "daily record")
	}
	return projectDailyRecord(record), nil
}

func (c UpdateDailyRecordCommand) validate(now time.Time) error {
	var v violations
	v.requireDateNotFuture("record_date", c.RecordDate, now)
	v.nonNegative("egg_count", c.EggCount)
	v.maxLen("notes", c.Notes, maxNotesLen)
	return v.asError("invalid daily record")
}

// Update mutates a record inside its same-day edit window. The lock is
// re-evaluated against the server clock on every attempt.
func (s *DailyRecordCommands) Update(ctx context.Context, cmd UpdateDailyRecordCommand) (*DailyRecordDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if cmd.ID == uuid.Nil {
		return nil, domain.Invalid("invalid daily record", domain.Violation{Field: "id", Message: "is required"})
	}

	record, err := s.records.FindByID(ctx, tenantID, cmd.ID)
	if err != nil {
		s.logger.Error("failed to load daily record", "error", err, "record_id", cmd.ID)
		return nil, domain.Failuref(err, "update", "daily record")
	}
	if record == nil {
		return nil, domain.NotFound("Daily record")
	}

	now := s.now().UTC()
	if !record.Editable(now) {
		return nil, domain.Invalid(sameDayLockMessage)
	}
	if err := cmd.validate(now); err != nil {
		return nil, err
	}

	recordDate := dateOnly(cmd.RecordDate)
	if !recordDate.Equal(dateOnly(record.RecordDate)) {
		taken, err := s.records.ExistsForDate(ctx, tenantID, record.FlockID, recordDate, record.ID)
		if err != nil {
			s.logger.Error("failed to probe record date", "error", err, "flock_id", record.FlockID)
			return nil, domain.Failuref(err, "update", "daily record")
		}
		if taken {
			return nil, domain.Conflict(recordConflictMessage)
		}
	}

	record.RecordDate = recordDate
	record.EggCount = cmd.EggCount
	record.Notes = cmd.Notes
	record.UpdatedAt = now

	if err := s.records.Update(ctx, record); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict(recordConflictMessage)
		}
		s.logger.Error("failed to update daily record", "error", err, "record_id", record.ID)
		return nil, domain.Failuref(err, "update", "daily record")
	}
	return projectDailyRecord(record), nil
}

// Delete removes a record, refused once the same-day edit window has closed.
func (s *DailyRecordCommands) Delete(ctx context.Context, cmd DeleteDailyRecordCommand) error {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return err
	}
	if cmd.ID == uuid.Nil {
		return domain.Invalid("invalid daily record", domain.Violation{Field: "id", Message: "is required"})
	}

	record, err := s.records.FindByID(ctx, tenantID, cmd.ID)
	if err != nil {
		s.logger.Error("failed to load daily record", "error", err, "record_id", cmd.ID)
		return domain.Failuref(err, "delete", "daily record")
	}
	if record == nil {
		return domain.NotFound("Daily record")
	}

	if !record.Editable(s.now().UTC()) {
		return domain.Invalid(sameDayLockMessage)
	}

	if err := s.records.Delete(ctx, tenantID, record.ID); err != nil {
		s.logger.Error("failed to delete daily record", "error", err, "record_id", record.ID)
		return domain.Failuref(err, "delete", "daily record")
	}
	return nil
}
