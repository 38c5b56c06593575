package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flockwise/flockwise/internal/domain"
)

// CreatePurchaseCommand records a farm expense, optionally tied to a coop.
type CreatePurchaseCommand struct {
	Name         string
	Type         domain.PurchaseType
	Amount       decimal.Decimal
	Quantity     decimal.Decimal
	Unit         domain.Unit
	PurchaseDate time.Time
	CoopID       *uuid.UUID
	ConsumedDate *time.Time
	Notes        string
}

// UpdatePurchaseCommand edits an existing purchase.
type UpdatePurchaseCommand struct {
	ID           uuid.UUID
	Name         string
	Type         domain.PurchaseType
	Amount       decimal.Decimal
	Quantity     decimal.Decimal
	Unit         domain.Unit
	PurchaseDate time.Time
	CoopID       *uuid.UUID
	ConsumedDate *time.Time
	Notes        string
}

// DeletePurchaseCommand removes a purchase.
type DeletePurchaseCommand struct {
	ID uuid.UUID
}

// PurchaseCommands handles purchase mutation commands. Unlike the other
// handlers, ownership is enforced explicitly after lookup: a purchase
// belonging to another tenant resolves but reports Forbidden.
type PurchaseCommands struct {
	purchases domain.PurchaseStore
	coops     domain.CoopStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewPurchaseCommands creates the purchase command handler.
func NewPurchaseCommands(purchases domain.PurchaseStore, coops domain.CoopStore, logger *slog.Logger) *PurchaseCommands {
	return &PurchaseCommands{purchases: purchases, coops: coops, logger: logger, now: time.Now}
}

func validatePurchaseFields(name string, typ domain.PurchaseType, amount, quantity decimal.Decimal, unit domain.Unit, purchaseDate time.Time, consumedDate *time.Time, notes string, now time.Time) error {
	var v violations
	v.requireString("name", name, maxNameLen)
	if !domain.ValidPurchaseType(typ) {
		v.add("type", "is not a valid purchase type")
	}
	if amount.IsNegative() {
		v.add("amount", "must be zero or greater")
	}
	if !quantity.IsPositive() {
		v.add("quantity", "must be greater than zero")
	}
	if !domain.ValidUnit(unit) {
		v.add("unit", "is not a valid unit")
	}
	v.requireDateNotFuture("purchase_date", purchaseDate, now)
	if consumedDate != nil && dateOnly(*consumedDate).Before(dateOnly(purchaseDate)) {
		v.add("consumed_date", "cannot be before the purchase date")
	}
	v.maxLen("notes", notes, maxNotesLen)
	return v.asError("invalid purchase")
}

// resolveCoopRef checks that an optional coop reference points at an existing
// coop owned by the tenant.
func (s *PurchaseCommands) resolveCoopRef(ctx context.Context, tenantID uuid.UUID, coopID *uuid.UUID, verb string) error {
	if coopID == nil {
		return nil
	}
	coop, err := s.coops.FindByID(ctx, tenantID, *coopID)
	if err != nil {
		s.logger.Error("failed to load coop", "error", err, "coop_id", *coopID)
		return domain.Failuref(err, verb, "purchase")
	}
	if coop == nil {
		return domain.NotFoundID("Coop", coopID.String())
	}
	return nil
}

// Create validates and persists a new purchase.
func (s *PurchaseCommands) Create(ctx context.Context, cmd CreatePurchaseCommand) (*PurchaseDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if err := validatePurchaseFields(cmd.Name, cmd.Type, cmd.Amount, cmd.Quantity, cmd.Unit, cmd.PurchaseDate, cmd.ConsumedDate, cmd.Notes, now); err != nil {
		return nil, err
	}
	if err := s.resolveCoopRef(ctx, tenantID, cmd.CoopID, "create"); err != nil {
		return nil, err
	}

	purchase := &domain.Purchase{
		ID:           uuid.New(),
		TenantID:     tenantID,
		Name:         strings.TrimSpace(cmd.Name),
		Type:         cmd.Type,
		Amount:       cmd.Amount,
		Quantity:     cmd.Quantity,
		Unit:         cmd.Unit,
		PurchaseDate: dateOnly(cmd.PurchaseDate),
		CoopID:       cmd.CoopID,
		ConsumedDate: dateOnlyPtr(cmd.ConsumedDate),
		Notes:        cmd.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.purchases.Store(ctx, purchase); err != nil {
		s.logger.Error("failed to store purchase", "error", err, "tenant_id", tenantID)
		return nil, domain.Failuref(err, "create", "purchase")
	}
	return projectPurchase(purchase), nil
}

// Update loads a purchase, verifies tenant ownership, and applies the edit.
func (s *PurchaseCommands) Update(ctx context.Context, cmd UpdatePurchaseCommand) (*PurchaseDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	if cmd.ID == uuid.Nil {
		return nil, domain.Invalid("invalid purchase", domain.Violation{Field: "id", Message: "is required"})
	}

	purchase, err := s.purchases.FindByID(ctx, cmd.ID)
	if err != nil {
		s.logger.Error("failed to load purchase", "error", err, "purchase_id", cmd.ID)
		return nil, domain.Failuref(err, "update", "purchase")
	}
	if purchase == nil {
		return nil, domain.NotFound("Purchase")
	}
	if !purchase.OwnedBy(tenantID) {
		return nil, domain.Forbidden("You do not have access to this purchase")
	}

	now := s.now().UTC()
	if err := validatePurchaseFields(cmd.Name, cmd.Type, cmd.Amount, cmd.Quantity, cmd.Unit, cmd.PurchaseDate, cmd.ConsumedDate, cmd.Notes, now); err != nil {
		return nil, err
	}
	if err := s.resolveCoopRef(ctx, tenantID, cmd.CoopID, "update"); err != nil {
		return nil, err
	}

	purchase.Name = strings.TrimSpace(cmd.Name)
	purchase.Type = cmd.Type
	purchase.Amount = cmd.Amount
	purchase.Quantity = cmd.Quantity
	purchase.Unit = cmd.Unit
	purchase.PurchaseDate = dateOnly(cmd.PurchaseDate)
	purchase.CoopID = cmd.CoopID
	purchase.ConsumedDate = dateOnlyPtr(cmd.ConsumedDate)
	purchase.Notes = cmd.Notes
	purchase.UpdatedAt = now

	if err := s.purchases.Update(ctx, purchase); err != nil {
		s.logger.Error("failed to update purchase", "error", err, "purchase_id", purchase.ID)
		return nil, domain.Failuref(err, "update", "purchase")
	}
	return projectPurchase(purchase), nil
}

// Delete removes a purchase after the same ownership check.
func (s *PurchaseCommands) Delete(ctx context.Context, cmd DeletePurchaseCommand) error {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return err
	}
	if cmd.ID == uuid.Nil {
		return domain.Invalid("invalid purchase", domain.Violation{Field: "id", Message: "is required"})
	}

	purchase, err := s.purchases.FindByID(ctx, cmd.ID)
	if err != nil {
		s.logger.Error("failed to load purchase", "error", err, "purchase_id", cmd.ID)
		return domain.Failuref(err, "delete", "purchase")
	}
	if purchase == nil {
		return domain.NotFound("Purchase")
	}
	if !purchase.OwnedBy(tenantID) {
		return domain.Forbidden("You do not have access to this purchase")
	}

	if err := s.purchases.Delete(ctx, purchase.ID); err != nil {
		s.logger.Error("failed to delete purchase", "error", err, "purchase_id", purchase.ID)
		return domain.Failuref(err, "delete", "purchase")
	}
	return nil
}
