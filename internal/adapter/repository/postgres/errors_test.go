package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/flockwise/flockwise/internal/domain"
)

func TestTranslate(t *testing.T) {
	t.Run("Unique Violation Becomes Conflict", func(t *testing.T) {
		err := translate(&pq.Error{Code: "23505", Constraint: "daily_records_flock_date_key"})
		if domain.CodeOf(err) != domain.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("Wrapped Unique Violation Becomes Conflict", func(t *testing.T) {
		err := translate(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}))
		if domain.CodeOf(err) != domain.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("Other Postgres Errors Pass Through", func(t *testing.T) {
		orig := &pq.Error{Code: "23503"} // foreign key violation
		err := translate(orig)
		if !errors.Is(err, orig) {
			t.Fatalf("expected error to pass through unchanged, got %v", err)
		}
	})

	t.Run("Nil Stays Nil", func(t *testing.T) {
		if err := translate(nil); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})
}
