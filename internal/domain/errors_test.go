package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCodeOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{"NotFound", NotFound("Flock"), CodeNotFound},
		{"Conflict", Conflict("duplicate"), CodeConflict},
		{"Unauthorized", Unauthorized("User is not authenticated"), CodeUnauthorized},
		{"Validation", Invalid("invalid flock"), CodeValidation},
		{"Wrapped Domain Error", fmt.Errorf("context: %w", Forbidden("no access")), CodeForbidden},
		{"Plain Error Defaults To Failure", errors.New("boom"), CodeFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Errorf("CodeOf() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	if !errors.Is(NotFound("Coop"), ErrNotFound) {
		t.Error("expected NotFound error to match ErrNotFound sentinel")
	}
	if errors.Is(Conflict("dup"), ErrNotFound) {
		t.Error("expected Conflict error not to match ErrNotFound sentinel")
	}
}

func TestFailureNeverLeaksCause(t *testing.T) {
	cause := errors.New("pq: connection refused on 10.0.0.5")
	err := Failuref(cause, "create", "daily record")

	if strings.Contains(err.Error(), "connection refused") {
		t.Errorf("failure message leaked the underlying cause: %q", err.Error())
	}
	if err.Error() != "failed to create daily record" {
		t.Errorf("unexpected failure message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to remain reachable via Unwrap for logging")
	}
}

func TestErrorMessageIncludesViolations(t *testing.T) {
	err := Invalid("invalid flock",
		Violation{Field: "identifier", Message: "is required"},
		Violation{Message: "at least one of hens, roosters or chicks must be greater than zero"},
	)
	msg := err.Error()
	if !strings.Contains(msg, "identifier: is required") {
		t.Errorf("expected field-scoped violation in message, got %q", msg)
	}
	if !strings.Contains(msg, "at least one of") {
		t.Errorf("expected cross-field violation in message, got %q", msg)
	}
}
