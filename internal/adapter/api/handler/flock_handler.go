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

// FlockHandler exposes flock commands and queries over HTTP.
type FlockHandler struct {
	commands *usecase.FlockCommands
	queries  *usecase.Queries
	logger   *slog.Logger
	metrics  *metrics.CommandMetrics
}

// NewFlockHandler creates the flock HTTP handler.
func NewFlockHandler(commands *usecase.FlockCommands, queries *usecase.Queries, logger *slog.Logger, m *metrics.CommandMetrics) *FlockHandler {
	return &FlockHandler{commands: commands, queries: queries, logger: logger, metrics: m}
}

type createFlockRequest struct {
	CoopID     string `json:"coop_id"`
	Identifier string `json:"identifier"`
	HatchDate  string `json:"hatch_date"`
	Hens       int    `json:"hens"`
	Roosters   int    `json:"roosters"`
	Chicks     int    `json:"chicks"`
}

func (h *FlockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	coopID, err := uuid.Parse(req.CoopID)
	if err != nil {
		badRequest(w, "invalid coop ID")
		return
	}
	hatchDate, err := parseDate(req.HatchDate)
	if err != nil {
		badRequest(w, "invalid hatch date, expected YYYY-MM-DD")
		return
	}

	start := time.Now()
	dto, err := h.commands.Create(r.Context(), usecase.CreateFlockCommand{
		CoopID:     coopID,
		Identifier: req.Identifier,
		HatchDate:  hatchDate,
		Hens:       req.Hens,
		Roosters:   req.Roosters,
		Chicks:     req.Chicks,
	})
	observe(h.metrics, "flock", "create", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

type updateFlockRequest struct {
	Identifier string `json:"identifier"`
	HatchDate  string `json:"hatch_date"`
}

func (h *FlockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid flock ID")
		return
	}
	var req updateFlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	hatchDate, err := parseDate(req.HatchDate)
	if err != nil {
		badRequest(w, "invalid hatch date, expected YYYY-MM-DD")
		return
	}

	start := time.Now()
	dto, err := h.commands.Update(r.Context(), usecase.UpdateFlockCommand{
		ID:         id,
		Identifier: req.Identifier,
		HatchDate:  hatchDate,
	})
	observe(h.metrics, "flock", "update", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *FlockHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid flock ID")
		return
	}

	start := time.Now()
	err = h.commands.Archive(r.Context(), usecase.ArchiveFlockCommand{ID: id})
	observe(h.metrics, "flock", "archive", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FlockHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid flock ID")
		return
	}
	dto, err := h.queries.GetFlock(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *FlockHandler) ListByCoop(w http.ResponseWriter, r *http.Request) {
	coopID, err := uuid.Parse(r.PathValue("coopID"))
	if err != nil {
		badRequest(w, "invalid coop ID")
		return
	}
	dtos, err := h.queries.ListFlocks(r.Context(), coopID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}
