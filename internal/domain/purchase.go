package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseType categorizes what a purchase was for.
type PurchaseType string

const (
	PurchaseFeed        PurchaseType = "feed"
	PurchaseBedding     PurchaseType = "bedding"
	PurchaseMedication  PurchaseType = "medication"
	PurchaseEquipment   PurchaseType = "equipment"
	PurchaseLivestock   PurchaseType = "livestock"
	PurchaseMaintenance PurchaseType = "maintenance"
	PurchaseOther       PurchaseType = "other"
)

// ValidPurchaseType reports membership in the purchase type enumeration.
func ValidPurchaseType(t PurchaseType) bool {
	switch t {
	case PurchaseFeed, PurchaseBedding, PurchaseMedication, PurchaseEquipment,
		PurchaseLivestock, PurchaseMaintenance, PurchaseOther:
		return true
	}
	return false
}

// Unit is the measurement unit a purchase quantity is expressed in.
type Unit string

const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "g"
	UnitLiter    Unit = "l"
	UnitPiece    Unit = "piece"
	UnitBag      Unit = "bag"
	UnitBale     Unit = "bale"
)

// ValidUnit reports membership in the unit enumeration.
func ValidUnit(u Unit) bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitPiece, UnitBag, UnitBale:
		return true
	}
	return false
}

// Purchase is a farm expense, optionally tied to a coop. Unlike the other
// aggregates, ownership is verified explicitly by the handler after lookup.
type Purchase struct {
	ID           uuid.UUID       `json:"id"`
	TenantID     uuid.UUID       `json:"tenant_id"`
	Name         string          `json:"name"`
	Type         PurchaseType    `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         Unit            `json:"unit"`
	PurchaseDate time.Time       `json:"purchase_date"`
	CoopID       *uuid.UUID      `json:"coop_id,omitempty"`
	ConsumedDate *time.Time      `json:"consumed_date,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OwnedBy reports whether the purchase belongs to the given tenant.
func (p *Purchase) OwnedBy(tenantID uuid.UUID) bool {
	return p.TenantID == tenantID
}
