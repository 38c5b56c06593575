package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// CreateCoopCommand creates a new coop for the caller's tenant.
type CreateCoopCommand struct {
	Name     string
	Location string
}

// UpdateCoopCommand renames or relocates an existing coop.
type UpdateCoopCommand struct {
	ID       uuid.UUID
	Name     string
	Location string
	IsActive bool
}

// DeleteCoopCommand hard-deletes a coop. Refused while flocks still live in
// it.
type DeleteCoopCommand struct {
	ID uuid.UUID
}

// CoopCommands handles coop mutation commands.
type CoopCommands struct {
	coops  domain.CoopStore
	flocks domain.FlockStore
	logger *slog.Logger
	now    func() time.Time
}

// NewCoopCommands creates the coop command handler.
func NewCoopCommands(coops domain.CoopStore, flocks domain.FlockStore, logger *slog.Logger) *CoopCommands {
	return &CoopCommands{coops: coops, flocks: flocks, logger: logger, now: time.Now}
}

func (c CreateCoopCommand) validate() error {
	var v violations
	v.requireString("name", c.Name, maxNameLen)
	return v.asError("invalid coop")
}

// Create validates and persists a new coop.
func (s *CoopCommands) Create(ctx context.Context, cmd CreateCoopCommand) (*CoopDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	coop := domain.NewCoop(tenantID, strings.TrimSpace(cmd.Name), strings.TrimSpace(cmd.Location), s.now().UTC())
	if err := s.coops.Store(ctx, coop); err != nil {
		s.logger.Error("failed to store coop", "error", err, "tenant_id", tenantID)
		return nil, domain.Failuref(err, "create", "coop")
	}
	return projectCoop(coop), nil
}

func (c UpdateCoopCommand) validate() error {
	var v violations
	v.requireString("name", c.Name, maxNameLen)
	return v.asError("invalid coop")
}

// Update loads the coop, applies the new details, and persists it.
func (s *CoopCommands) Update(ctx context.Context, cmd UpdateCoopCommand) (*CoopDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if cmd.ID == uuid.Nil {
		return nil, domain.Invalid("invalid coop", domain.Violation{Field: "id", Message: "is required"})
	}

	coop, err := s.coops.FindByID(ctx, tenantID, cmd.ID)
	if err != nil {
		s.logger.Error("failed to load coop", "error", err, "coop_id", cmd.ID)
		return nil, domain.Failuref(err, "update", "coop")
	}
	if coop == nil {
		return nil, domain.NotFound("Coop")
	}

	if err := cmd.validate(); err != nil {
		return nil, err
	}

	coop.Name = strings.TrimSpace(cmd.Name)
	coop.Location = strings.TrimSpace(cmd.Location)
	coop.IsActive = cmd.IsActive
	coop.UpdatedAt = s.now().UTC()

	if err := s.coops.Update(ctx, coop); err != nil {
		s.logger.Error("failed to update coop", "error", err, "coop_id", coop.ID)
		return nil, domain.Failuref(err, "update", "coop")
	}
	return projectCoop(coop), nil
}

// Delete removes a coop that no longer houses any flock.
func (s *CoopCommands) Delete(ctx context.Context, cmd DeleteCoopCommand) error {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return err
	}
	if cmd.ID == uuid.Nil {
		return domain.Invalid("invalid coop", domain.Violation{Field: "id", Message: "is required"})
	}

	coop, err := s.coops.FindByID(ctx, tenantID, cmd.ID)
	if err != nil {
		s.logger.Error("failed to load coop", "error", err, "coop_id", cmd.ID)
		return domain.Failuref(err, "delete", "coop")
	}
	if coop == nil {
		return domain.NotFound("Coop")
	}

	count, err := s.flocks.CountByCoop(ctx, tenantID, coop.ID)
	if err != nil {
		s.logger.Error("failed to count flocks", "error", err, "coop_id", coop.ID)
		return domain.Failuref(err, "delete", "coop")
	}
	if count > 0 {
		return domain.Conflict("Coop cannot be deleted while it still contains flocks")
	}

	if err := s.coops.Delete(ctx, tenantID, coop.ID); err != nil {
		s.logger.Error("failed to delete coop", "error", err, "coop_id", coop.ID)
		return domain.Failuref(err, "delete", "coop")
	}
	return nil
}
