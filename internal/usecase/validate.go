package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// Field length bounds shared across command validators.
const (
	maxIdentifierLen = 50
	maxNameLen       = 100
	maxNotesLen      = 500
)

// requireTenant is the authorization gate every handler runs first: the
// caller must be authenticated and must resolve to a tenant before any store
// is touched.
func requireTenant(ctx context.Context) (uuid.UUID, error) {
	id := domain.IdentityFrom(ctx)
	if !id.Authenticated {
		return uuid.Nil, domain.Unauthorized("User is not authenticated")
	}
	if !id.HasTenant {
		return uuid.Nil, domain.Unauthorized("Tenant not found")
	}
	return id.TenantID, nil
}

// violations accumulates field-scoped findings for one command.
type violations []domain.Violation

func (v *violations) add(field, msg string) {
	*v = append(*v, domain.Violation{Field: field, Message: msg})
}

func (v violations) asError(msg string) error {
	if len(v) == 0 {
		return nil
	}
	return domain.Invalid(msg, v...)
}

func (v *violations) requireID(field string, id uuid.UUID) {
	if id == uuid.Nil {
		v.add(field, "is required")
	}
}

func (v *violations) requireString(field, val string, max int) {
	if strings.TrimSpace(val) == "" {
		v.add(field, "is required")
		return
	}
	v.maxLen(field, val, max)
}

// maxLen bounds are in characters, not bytes.
func (v *violations) maxLen(field, val string, max int) {
	if utf8.RuneCountInString(val) > max {
		v.add(field, "must be at most "+strconv.Itoa(max)+" characters")
	}
}

func (v *violations) requireDateNotFuture(field string, d, now time.Time) {
	if d.IsZero() {
		v.add(field, "is required")
		return
	}
	if dateOnly(d).After(dateOnly(now)) {
		v.add(field, "cannot be in the future")
	}
}

func (v *violations) nonNegative(field string, n int) {
	if n < 0 {
		v.add(field, "must be zero or greater")
	}
}

// dateOnly truncates an instant to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dateOnlyPtr is dateOnly for optional dates.
func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dateOnly(*t)
	return &d
}
