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

// DailyRecordHandler exposes daily-record commands and queries over HTTP.
type DailyRecordHandler struct {
	commands *usecase.DailyRecordCommands
	queries  *usecase.Queries
	logger   *slog.Logger
	metrics  *metrics.CommandMetrics
}

// NewDailyRecordHandler creates the daily-record HTTP handler.
func NewDailyRecordHandler(commands *usecase.DailyRecordCommands, queries *usecase.Queries, logger *slog.Logger, m *metrics.CommandMetrics) *DailyRecordHandler {
	return &DailyRecordHandler{commands: commands, queries: queries, logger: logger, metrics: m}
}

type createRecordRequest struct {
	FlockID    string `json:"flock_id"`
	RecordDate string `json:"record_date"`
	EggCount   int    `json:"egg_count"`
	Notes      string `json:"notes"`
}

func (h *DailyRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	flockID, err := uuid.Parse(req.FlockID)
	if err != nil {
		badRequest(w, "invalid flock ID")
		return
	}
	recordDate, err := parseDate(req.RecordDate)
	if err != nil {
		badRequest(w, "invalid record date, expected YYYY-MM-DD")
		return
	}

	start := time.Now()
	dto, err := h.commands.Create(r.Context(), usecase.CreateDailyRecordCommand{
		FlockID:    flockID,
		RecordDate: recordDate,
		EggCount:   req.EggCount,
		Notes:      req.Notes,
	})
	observe(h.metrics, "daily_record", "create", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

type updateRecordRequest struct {
	RecordDate string `json:"record_date"`
	EggCount   int    `json:"egg_count"`
	Notes      string `json:"notes"`
}

func (h *DailyRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid record ID")
		return
	}
	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	recordDate, err := parseDate(req.RecordDate)
	if err != nil {
		badRequest(w, "invalid record date, expected YYYY-MM-DD")
		return
	}

	start := time.Now()
	dto, err := h.commands.Update(r.Context(), usecase.UpdateDailyRecordCommand{
		ID:         id,
		RecordDate: recordDate,
		EggCount:   req.EggCount,
		Notes:      req.Notes,
	})
	observe(h.metrics, "daily_record", "update", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *DailyRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		badRequest(w, "invalid record ID")
		return
	}

	start := time.Now()
	err = h.commands.Delete(r.Context(), usecase.DeleteDailyRecordCommand{ID: id})
	observe(h.metrics, "daily_record", "delete", start, err)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DailyRecordHandler) ListByFlock(w http.ResponseWriter, r *http.Request) {
	flockID, err := uuid.Parse(r.PathValue("flockID"))
	if err != nil {
		badRequest(w, "invalid flock ID")
		return
	}
	dtos, err := h.queries.ListDailyRecords(r.Context(), flockID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}
