package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a business error. Callers branch on the code, never on the
// message text; messages are for display only.
type Code string

const (
	CodeUnauthorized Code = "unauthorized"
	CodeValidation   Code = "validation"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeForbidden    Code = "forbidden"
	CodeFailure      Code = "failure"
)

// Violation is a single field-scoped validation finding. An empty Field means
// the violation applies to the command as a whole (cross-field rules).
type Violation struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is the typed outcome for every expected business failure. It carries
// a stable code, a human-readable message, optional field violations, and an
// optional wrapped cause (only set for CodeFailure, never shown to callers).
type Error struct {
	Code       Code
	Message    string
	Violations []Violation
	cause      error
}

func (e *Error) Error() string {
	if len(e.Violations) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Field+": "+v.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes the underlying infrastructure fault for logging. It is nil
// for every code except CodeFailure.
func (e *Error) Unwrap() error { return e.cause }

// Is makes errors.Is match on code equality, so sentinels like
// domain.ErrNotFound compare against any error carrying the same code.
func (e *Error) Is(target error) bool {
	var de *Error
	if errors.As(target, &de) {
		return de.Code == e.Code
	}
	return false
}

// Sentinels for errors.Is comparisons.
var (
	ErrUnauthorized = &Error{Code: CodeUnauthorized}
	ErrNotFound     = &Error{Code: CodeNotFound}
	ErrConflict     = &Error{Code: CodeConflict}
	ErrForbidden    = &Error{Code: CodeForbidden}
)

// CodeOf extracts the business code from an error, or CodeFailure when the
// error is not a domain error (unexpected faults default to the opaque
// failure category).
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeFailure
}

func Unauthorized(msg string) *Error {
	return &Error{Code: CodeUnauthorized, Message: msg}
}

func NotFound(entity string) *Error {
	return &Error{Code: CodeNotFound, Message: entity + " not found"}
}

func NotFoundID(entity, id string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s with ID %s not found", entity, id)}
}

func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Code: CodeForbidden, Message: msg}
}

// Invalid builds a validation error from one or more violations.
func Invalid(msg string, violations ...Violation) *Error {
	return &Error{Code: CodeValidation, Message: msg, Violations: violations}
}

// Failuref wraps an unexpected collaborator fault behind a generic message.
// The cause is kept for logs via Unwrap and must never reach callers' output.
func Failuref(cause error, verb, entity string) *Error {
	return &Error{
		Code:    CodeFailure,
		Message: fmt.Sprintf("failed to %s %s", verb, entity),
		cause:   cause,
	}
}
