package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/flockwise/flockwise/internal/adapter/metrics"
	"github.com/flockwise/flockwise/internal/domain"
	"github.com/flockwise/flockwise/internal/usecase"
)

// PurchaseHandler exposes purchase commands and queries over HTTP.
type PurchaseHandler struct {
	commands *usecase.PurchaseCommands
	queries  *usecase.Queries
	logger   *slog.Logger
	metrics  *metrics.CommandMetrics
}

// NewPurchaseHandler creates the purchase HTTP handler.
func NewPurchaseHandler(commands *usecase.PurchaseCommands, queries *usecase.Queries, logger *slog.Logger, m *metrics.CommandMetrics) *PurchaseHandler {
	return &PurchaseHandler{commands: commands, queries: queries, logger: logger, metrics: m}
}

type purchaseRequest struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PurchaseDate string          `json:"purchase_date"`
	CoopID       string          `json:"coop_id"`
	ConsumedDate string          `json:"consumed_date"`
	Notes        string          `json:"notes"`
}

// toCommandFields parses the wire-level strings shared by create and update.
func (req purchaseRequest) toCommandFields() (purchaseDate time.Time, coopID *uuid.UUID, consumedDate *time.Time, errMsg string) {
	var err error
	purchaseDate, err = parseDate(req.PurchaseDate)
	if err != nil {
		return time.Time{}, nil, nil, "invalid purchase date, expected YYYY-MM-DD"
	}
	if req.CoopID != "" {
		id, err := uuid.Parse(req.CoopID)
		if err != nil {
			return time.Time{}, nil, nil, "invalid coop ID"
		}
		coopID = &id
	}
	consumedDate, err = parseOptionalDate(req.ConsumedDate)
	if err != nil {
		return time.Time{}, nil, nil, "invalid consumed date, expected YYYY-MM-DD"
	}
	return purchaseDate, coopID, consumedDate, ""
}

func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	purchaseDate, coopID, consumedDate, errMsg := req.toCommandFields()
	if errMsg != "" {
		badRequest(w, errMsg)
		return
	}

	start := time.Now()
	dto, err := h.commands.Create(r.Context(), usecase.CreatePurchaseCommand{
		Name:         req.Name,
		Type:         domain.PurchaseType(req.Type),
		Amount:       req.Amount,
		Quantity:     req.Quantity,
		Unit:         domain.Unit(req.Unit),
		PurchaseDate: purchaseDate,
		CoopID:       coopID,
		ConsumedDate: consumedDate,
		Notes:        req.Notes,
	})
	observe(h.metrics, "purchase", "create", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

func (h *PurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid purchase ID")
		return
	}
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	purchaseDate, coopID, consumedDate, errMsg := req.toCommandFields()
	if errMsg != "" {
		badRequest(w, errMsg)
		return
	}

	start := time.Now()
	dto, err := h.commands.Update(r.Context(), usecase.UpdatePurchaseCommand{
		ID:           id,
		Name:         req.Name,
		Type:         domain.PurchaseType(req.Type),
		Amount:       req.Amount,
		Quantity:     req.Quantity,
		Unit:         domain.Unit(req.Unit),
		PurchaseDate: purchaseDate,
		CoopID:       coopID,
		ConsumedDate: consumedDate,
		Notes:        req.Notes,
	})
	observe(h.metrics, "purchase", "update", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid purchase ID")
		return
	}

	start := time.Now()
	err = h.commands.Delete(r.Context(), usecase.DeletePurchaseCommand{ID: id})
	observe(h.metrics, "purchase", "delete", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.queries.ListPurchases(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}
