package postgres

import (
	"errors"

	"github.com/lib/pq"

	"github.com/flockwise/flockwise/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

// translate maps database uniqueness violations to the conflict taxonomy at
// the store boundary. Two concurrent creates can both pass the handler's
// pre-check; the loser surfaces here and must come back as a conflict, not a
// crash. Every other error passes through untouched.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return domain.Conflict("a record with the same unique value already exists")
	}
	return err
}
