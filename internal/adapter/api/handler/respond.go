package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/flockwise/flockwise/internal/adapter/metrics"
	"github.com/flockwise/flockwise/internal/domain"
)

// errorBody is the JSON error envelope. Clients branch on the code; the
// message and violations are display material.
type errorBody struct {
	Code       string             `json:"code"`
	Message    string             `json:"message"`
	Violations []domain.Violation `json:"violations,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict:
		return http.StatusConflict
	case domain.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders a business error. Non-domain errors are masked behind a
// generic failure body so infrastructure details never leak to clients.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		logger.Error("unclassified error reached the HTTP layer", "error", err)
		de = &domain.Error{Code: domain.CodeFailure, Message: "internal error"}
	}
	writeJSON(w, statusFor(de.Code), errorResponse{Error: errorBody{
		Code:       string(de.Code),
		Message:    de.Message,
		Violations: de.Violations,
	}})
}

// observe records the outcome of one command invocation.
func observe(m *metrics.CommandMetrics, entity, operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = string(domain.CodeOf(err))
	}
	m.CommandsTotal.WithLabelValues(entity, operation, result).Inc()
	m.CommandDuration.WithLabelValues(entity, operation).Observe(time.Since(start).Seconds())
}

// parseDate accepts a calendar date in YYYY-MM-DD form.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// parseOptionalDate returns nil for an empty string.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
		Code:    string(domain.CodeValidation),
		Message: msg,
	}})
}
