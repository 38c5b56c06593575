package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// FlockRepository implements domain.FlockStore on PostgreSQL. A flock row and
// its history rows form one aggregate: they are written in a single
// transaction and history is loaded alongside every flock read.
type FlockRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewFlockRepository creates a new PostgreSQL flock repository.
func NewFlockRepository(db *sql.DB, logger *slog.Logger) *FlockRepository {
	return &FlockRepository{db: db, logger: logger}
}

func (r *FlockRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Flock, error) {
	query := `
        SELECT id, tenant_id, coop_id, identifier, hatch_date, hens, roosters, chicks, is_active, created_at, updated_at
        FROM flocks WHERE tenant_id = $1 AND id = $2
    `
	var f domain.Flock
	err := r.db.QueryRowContext(ctx, query, tenantID, id).Scan(
		&f.ID, &f.TenantID, &f.CoopID, &f.Identifier, &f.HatchDate,
		&f.CurrentHens, &f.CurrentRoosters, &f.CurrentChicks, &f.IsActive,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if f.History, err = r.loadHistory(ctx, f.ID); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FlockRepository) loadHistory(ctx context.Context, flockID uuid.UUID) ([]domain.CompositionChange, error) {
	query := `
        SELECT hens, roosters, chicks, reason, change_date, notes
        FROM flock_history WHERE flock_id = $1 ORDER BY ordinal ASC
    `
	rows, err := r.db.QueryContext(ctx, query, flockID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.CompositionChange
	for rows.Next() {
		var h domain.CompositionChange
		if err := rows.Scan(&h.Hens, &h.Roosters, &h.Chicks, &h.Reason, &h.ChangeDate, &h.Notes); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

func (r *FlockRepository) FindByCoop(ctx context.Context, tenantID, coopID uuid.UUID) ([]*domain.Flock, error) {
	query := `
        SELECT id, tenant_id, coop_id, identifier, hatch_date, hens, roosters, chicks, is_active, created_at, updated_at
        FROM flocks WHERE tenant_id = $1 AND coop_id = $2 ORDER BY created_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query, tenantID, coopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flocks []*domain.Flock
	for rows.Next() {
		var f domain.Flock
		if err := rows.Scan(&f.ID, &f.TenantID, &f.CoopID, &f.Identifier, &f.HatchDate,
			&f.CurrentHens, &f.CurrentRoosters, &f.CurrentChicks, &f.IsActive,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flocks = append(flocks, &f)
	}
	return flocks, rows.Err()
}

func (r *FlockRepository) IdentifierExists(ctx context.Context, tenantID, coopID uuid.UUID, identifier string, excludeID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS(
            SELECT 1 FROM flocks
            WHERE tenant_id = $1 AND coop_id = $2 AND identifier = $3 AND id <> $4
        )
    `
	var exists bool
	err := r.db.QueryRowContext(ctx, query, tenantID, coopID, identifier, excludeID).Scan(&exists)
	return exists, err
}

func (r *FlockRepository) CountByCoop(ctx context.Context, tenantID, coopID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM flocks WHERE tenant_id = $1 AND coop_id = $2`,
		tenantID, coopID,
	).Scan(&count)
	return count, err
}

func (r *FlockRepository) Store(ctx context.Context, f *domain.Flock) error {
	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer txn.Rollback() // Rollback is a no-op if Commit() is called

	query := `
        INSERT INTO flocks (id, tenant_id, coop_id, identifier, hatch_date, hens, roosters, chicks, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err = txn.ExecContext(ctx, query, f.ID, f.TenantID, f.CoopID, f.Identifier, f.HatchDate,
		f.CurrentHens, f.CurrentRoosters, f.CurrentChicks, f.IsActive, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return translate(err)
	}

	historyQuery := `
        INSERT INTO flock_history (flock_id, ordinal, hens, roosters, chicks, reason, change_date, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	for i, h := range f.History {
		if _, err := txn.ExecContext(ctx, historyQuery, f.ID, i, h.Hens, h.Roosters, h.Chicks, h.Reason, h.ChangeDate, h.Notes); err != nil {
			return translate(err)
		}
	}
	return txn.Commit()
}

// Update persists the flock row only. History is append-only and is never
// rewritten by an update.
func (r *FlockRepository) Update(ctx context.Context, f *domain.Flock) error {
	query := `
        UPDATE flocks SET identifier = $3, hatch_date = $4, is_active = $5, updated_at = $6
        WHERE tenant_id = $1 AND id = $2
    `
	_, err := r.db.ExecContext(ctx, query, f.TenantID, f.ID, f.Identifier, f.HatchDate, f.IsActive, f.UpdatedAt)
	return translate(err)
}
