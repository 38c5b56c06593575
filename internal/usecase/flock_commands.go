package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// CreateFlockCommand registers a new flock in a coop with its starting
// composition.
type CreateFlockCommand struct {
	CoopID     uuid.UUID
	Identifier string
	HatchDate  time.Time
	Hens       int
	Roosters   int
	Chicks     int
}

// UpdateFlockCommand changes a flock's identifier and hatch date. Composition
// counts are not part of the command; they only change through composition
// events.
type UpdateFlockCommand struct {
	ID         uuid.UUID
	Identifier string
	HatchDate  time.Time
}

// ArchiveFlockCommand retires a flock. Archiving is idempotent.
type ArchiveFlockCommand struct {
	ID uuid.UUID
}

// FlockCommands handles flock mutation commands.
type FlockCommands struct {
	flocks domain.FlockStore
	coops  domain.CoopStore
	logger *slog.Logger
	now    func() time.Time
}

// NewFlockCommands creates the flock command handler.
func NewFlockCommands(flocks domain.FlockStore, coops domain.CoopStore, logger *slog.Logger) *FlockCommands {
	return &FlockCommands{flocks: flocks, coops: coops, logger: logger, now: time.Now}
}

func (c CreateFlockCommand) validate(now time.Time) error {
	var v violations
	v.requireID("coop_id", c.CoopID)
	v.requireString("identifier", c.Identifier, maxIdentifierLen)
	v.requireDateNotFuture("hatch_date", c.HatchDate, now)
	v.nonNegative("hens", c.Hens)
	v.nonNegative("roosters", c.Roosters)
	v.nonNegative("chicks", c.Chicks)
	if c.Hens <= 0 && c.Roosters <= 0 && c.Chicks <= 0 {
		v.add("", "at least one of hens, roosters or chicks must be greater than zero")
	}
	return v.asError("invalid flock")
}

// Create validates the command, checks the owning coop and the identifier
// uniqueness within it, then persists the new flock with its initial history
// entry.
func (s *FlockCommands) Create(ctx context.Context, cmd CreateFlockCommand) (*FlockDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if err := cmd.validate(now); err != nil {
		return nil, err
	}

	coop, err := s.coops.FindByID(ctx, tenantID, cmd.CoopID)
	if err != nil {
		s.logger.Error("failed to load coop", "error", err, "coop_id", cmd.CoopID)
		return nil, domain.Failuref(err, "create", "flock")
	}
	if coop == nil {
		return nil, domain.NotFound("Coop")
	}

	identifier := strings.TrimSpace(cmd.Identifier)
	taken, err := s.flocks.IdentifierExists(ctx, tenantID, cmd.CoopID, identifier, uuid.Nil)
	if err != nil {
		s.logger.Error("failed to probe flock identifier", "error", err, "coop_id", cmd.CoopID)
		return nil, domain.Failuref(err, "create", "flock")
	}
	if taken {
		return nil, domain.Conflict("A flock with this identifier already exists in this coop")
	}

	flock := domain.NewFlock(tenantID, cmd.CoopID, identifier, cmd.HatchDate, cmd.Hens, cmd.Roosters, cmd.Chicks, now)
	if err := s.flocks.Store(ctx, flock); err != nil {
		// The store surfaces the losing side of a create race as a conflict.
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict("A flock with this identifier already exists in this coop")
		}
		s.logger.Error("failed to store flock", "error", err, "coop_id", cmd.CoopID)
		return nil, domain.Failuref(err, "create", "flock")
	}
	return projectFlock(flock), nil
}

func (c UpdateFlockCommand) validate(now time.Time) error {
	var v violations
	v.requireString("identifier", c.Identifier, maxIdentifierLen)
	v.requireDateNotFuture("hatch_date", c.HatchDate, now)
	return v.asError("invalid flock")
}

// Update renames a flock. Renaming to the flock's current identifier is not a
// conflict; the uniqueness probe excludes the flock's own row.
func (s *FlockCommands) Update(ctx context.Context, cmd UpdateFlockCommand) (*FlockDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if cmd.ID == uuid.Nil {
		return nil, domain.Invalid("invalid flock", domain.Violation{Field: "id", Message: "is required"})
	}

	flock, err := s.flocks.FindByID(ctx, tenantID, cmd.ID)
	if err != nil {
		s.logger.Error("failed to load flock", "error", err, "flock_id", cmd.ID)
		return nil, domain.Failuref(err, "update", "flock")
	}
	if flock == nil {
		return nil, domain.NotFound("Flock")
	}

	now := s.now().UTC()
	if err := cmd.validate(now); err != nil {
		return nil, err
	}

	identifier := strings.TrimSpace(cmd.Identifier)
	taken, err := s.flocks.IdentifierExists(ctx, tenantID, flock.CoopID, identifier, flock.ID)
	if err != nil {
		s.logger.Error("failed to probe flock identifier", "error", err, "coop_id", flock.CoopID)
		return nil, domain.Failuref(err, "update", "flock")
	}
	if taken {
		return nil, domain.Conflict("A flock with this identifier already exists in this coop")
	}

	flock.Rename(identifier, cmd.HatchDate, now)
	if err := s.flocks.Update(ctx, flock); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Conflict("A flock with this identifier already exists in this coop")
		}
		s.logger.Error("failed to update flock", "error", err, "flock_id", flock.ID)
		return nil, domain.Failuref(err, "update", "flock")
	}
	return projectFlock(flock), nil
}

// Archive flips a flock to archived. Archiving an already-archived flock
// succeeds without touching its state; cross-tenant flocks never resolve and
// report as not found.
func (s *FlockCommands) Archive(ctx context.Context, cmd ArchiveFlockCommand) error {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return err
	}
	if cmd.ID == uuid.Nil {
		return domain.Invalid("invalid flock", domain.Violation{Field: "id", Message: "is required"})
	}

	flock, err := s.flocks.FindByID(ctx, tenantID, cmd.ID)
	if err != nil {
		s.logger.Error("failed to load flock", "error", err, "flock_id", cmd.ID)
		return domain.Failuref(err, "archive", "flock")
	}
	if flock == nil {
		return domain.NotFound("Flock")
	}

	flock.Archive(s.now().UTC())
	if err := s.flocks.Update(ctx, flock); err != nil {
		s.logger.Error("failed to archive flock", "error", err, "flock_id", flock.ID)
		return domain.Failuref(err, "archive", "flock")
	}
	return nil
}
