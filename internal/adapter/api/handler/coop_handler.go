package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/adapter/metrics"
	"github.com/flockwise/flockwise/internal/usecase"
)

// CoopHandler exposes coop commands and queries over HTTP.
type CoopHandler struct {
	commands *usecase.CoopCommands
	queries  *usecase.Queries
	logger   *slog.Logger
	metrics  *metrics.CommandMetrics
}

// NewCoopHandler creates the coop HTTP handler.
func NewCoopHandler(commands *usecase.CoopCommands, queries *usecase.Queries, logger *slog.Logger, m *metrics.CommandMetrics) *CoopHandler {
	return &CoopHandler{commands: commands, queries: queries, logger: logger, metrics: m}
}

type coopRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive *bool  `json:"is_active"`
}

func (h *CoopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req coopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	start := time.Now()
	dto, err := h.commands.Create(r.Context(), usecase.CreateCoopCommand{
		Name:     req.Name,
		Location: req.Location,
	})
	observe(h.metrics, "coop", "create", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

func (h *CoopHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid coop ID")
		return
	}
	var req coopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	start := time.Now()
	dto, err := h.commands.Update(r.Context(), usecase.UpdateCoopCommand{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
		IsActive: isActive,
	})
	observe(h.metrics, "coop", "update", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *CoopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid coop ID")
		return
	}

	start := time.Now()
	err = h.commands.Delete(r.Context(), usecase.DeleteCoopCommand{ID: id})
	observe(h.metrics, "coop", "delete", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CoopHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid coop ID")
		return
	}
	dto, err := h.queries.GetCoop(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *CoopHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.queries.ListCoops(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}
