package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flockwise/flockwise/internal/domain"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		code domain.Code
		want int
	}{
		{domain.CodeUnauthorized, http.StatusUnauthorized},
		{domain.CodeValidation, http.StatusBadRequest},
		{domain.CodeNotFound, http.StatusNotFound},
		{domain.CodeConflict, http.StatusConflict},
		{domain.CodeForbidden, http.StatusForbidden},
		{domain.CodeFailure, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.code); got != tc.want {
			t.Errorf("statusFor(%q) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWriteError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Domain Error Renders Code And Violations", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, logger, domain.Invalid("invalid flock",
			domain.Violation{Field: "identifier", Message: "is required"},
		))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body.Error.Code != string(domain.CodeValidation) {
			t.Errorf("unexpected code: %q", body.Error.Code)
		}
		if len(body.Error.Violations) != 1 || body.Error.Violations[0].Field != "identifier" {
			t.Errorf("unexpected violations: %+v", body.Error.Violations)
		}
	})

	t.Run("Unclassified Error Is Masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, logger, io.ErrUnexpectedEOF)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body.Error.Message != "internal error" {
			t.Errorf("raw error leaked to the client: %q", body.Error.Message)
		}
	})
}
