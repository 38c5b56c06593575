package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// CoopRepository implements domain.CoopStore on PostgreSQL. Every query is
// tenant-scoped; rows of other tenants never surface.
type CoopRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewCoopRepository creates a new PostgreSQL coop repository.
func NewCoopRepository(db *sql.DB, logger *slog.Logger) *CoopRepository {
	return &CoopRepository{db: db, logger: logger}
}

func (r *CoopRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Coop, error) {
	query := `
        SELECT id, tenant_id, name, location, is_active, created_at, updated_at
        FROM coops WHERE tenant_id = $1 AND id = $2
    `
	var c domain.Coop
	err := r.db.QueryRowContext(ctx, query, tenantID, id).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Location, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CoopRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.Coop, error) {
	query := `
        SELECT id, tenant_id, name, location, is_active, created_at, updated_at
        FROM coops WHERE tenant_id = $1 ORDER BY created_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coops []*domain.Coop
	for rows.Next() {
		var c domain.Coop
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Location, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		coops = append(coops, &c)
	}
	return coops, rows.Err()
}

func (r *CoopRepository) Store(ctx context.Context, c *domain.Coop) error {
	query := `
        INSERT INTO coops (id, tenant_id, name, location, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.db.ExecContext(ctx, query, c.ID, c.TenantID, c.Name, c.Location, c.IsActive, c.CreatedAt, c.UpdatedAt)
	return translate(err)
}

func (r *CoopRepository) Update(ctx context.Context, c *domain.Coop) error {
	query := `
        UPDATE coops SET name = $3, location = $4, is_active = $5, updated_at = $6
        WHERE tenant_id = $1 AND id = $2
    `
	_, err := r.db.ExecContext(ctx, query, c.TenantID, c.ID, c.Name, c.Location, c.IsActive, c.UpdatedAt)
	return translate(err)
}

func (r *CoopRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM coops WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	return err
}
