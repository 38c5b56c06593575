package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flockwise/flockwise/internal/domain"
)

// DTOs are the projections handlers return on success. Mapping is pure; no
// business logic lives here.

type CoopDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CompositionChangeDTO struct {
	Hens       int       `json:"hens"`
	Roosters   int       `json:"roosters"`
	Chicks     int       `json:"chicks"`
	Reason     string    `json:"reason"`
	ChangeDate time.Time `json:"change_date"`
	Notes      string    `json:"notes,omitempty"`
}

type FlockDTO struct {
	ID              string                 `json:"id"`
	CoopID          string                 `json:"coop_id"`
	Identifier      string                 `json:"identifier"`
	HatchDate       time.Time              `json:"hatch_date"`
	CurrentHens     int                    `json:"current_hens"`
	CurrentRoosters int                    `json:"current_roosters"`
	CurrentChicks   int                    `json:"current_chicks"`
	IsActive        bool                   `json:"is_active"`
	History         []CompositionChangeDTO `json:"history"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type DailyRecordDTO struct {
	ID         string    `json:"id"`
	FlockID    string    `json:"flock_id"`
	RecordDate time.Time `json:"record_date"`
	EggCount   int       `json:"egg_count"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PurchaseDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PurchaseDate time.Time       `json:"purchase_date"`
	CoopID       string          `json:"coop_id,omitempty"`
	ConsumedDate *time.Time      `json:"consumed_date,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func projectCoop(c *domain.Coop) *CoopDTO {
	return &CoopDTO{
		ID:        c.ID.String(),
		Name:      c.Name,
		Location:  c.Location,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func projectFlock(f *domain.Flock) *FlockDTO {
	history := make([]CompositionChangeDTO, 0, len(f.History))
	for _, h := range f.History {
		history = append(history, CompositionChangeDTO{
			Hens:       h.Hens,
			Roosters:   h.Roosters,
			Chicks:     h.Chicks,
			Reason:     h.Reason,
			ChangeDate: h.ChangeDate,
			Notes:      h.Notes,
		})
	}
	return &FlockDTO{
		ID:              f.ID.String(),
		CoopID:          f.CoopID.String(),
		Identifier:      f.Identifier,
		HatchDate:       f.HatchDate,
		CurrentHens:     f.CurrentHens,
		CurrentRoosters: f.CurrentRoosters,
		CurrentChicks:   f.CurrentChicks,
		IsActive:        f.IsActive,
		History:         history,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func projectDailyRecord(r *domain.DailyRecord) *DailyRecordDTO {
	return &DailyRecordDTO{
		ID:         r.ID.String(),
		FlockID:    r.FlockID.String(),
		RecordDate: r.RecordDate,
		EggCount:   r.EggCount,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func projectPurchase(p *domain.Purchase) *PurchaseDTO {
	dto := &PurchaseDTO{
		ID:           p.ID.String(),
		Name:         p.Name,
		Type:         string(p.Type),
		Amount:       p.Amount,
		Quantity:     p.Quantity,
		Unit:         string(p.Unit),
		PurchaseDate: p.PurchaseDate,
		ConsumedDate: p.ConsumedDate,
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.CoopID != nil {
		dto.CoopID = p.CoopID.String()
	}
	return dto
}
