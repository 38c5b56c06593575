package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// PurchaseRepository implements domain.PurchaseStore on PostgreSQL.
// FindByID deliberately omits the tenant filter: the purchase handlers load
// the row first and enforce ownership themselves.
type PurchaseRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPurchaseRepository creates a new PostgreSQL purchase repository.
func NewPurchaseRepository(db *sql.DB, logger *slog.Logger) *PurchaseRepository {
	return &PurchaseRepository{db: db, logger: logger}
}

func (r *PurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	query := `
        SELECT id, tenant_id, name, type, amount, quantity, unit, purchase_date, coop_id, consumed_date, notes, created_at, updated_at
        FROM purchases WHERE id = $1
    `
	var (
		p        domain.Purchase
		coopID   uuid.NullUUID
		consumed sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.TenantID, &p.Name, &p.Type, &p.Amount, &p.Quantity, &p.Unit,
		&p.PurchaseDate, &coopID, &consumed, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if coopID.Valid {
		p.CoopID = &coopID.UUID
	}
	if consumed.Valid {
		p.ConsumedDate = &consumed.Time
	}
	return &p, nil
}

func (r *PurchaseRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.Purchase, error) {
	query := `
        SELECT id, tenant_id, name, type, amount, quantity, unit, purchase_date, coop_id, consumed_date, notes, created_at, updated_at
        FROM purchases WHERE tenant_id = $1 ORDER BY purchase_date DESC
    `
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []*domain.Purchase
	for rows.Next() {
		var (
			p        domain.Purchase
			coopID   uuid.NullUUID
			consumed sql.NullTime
		)
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.Type, &p.Amount, &p.Quantity, &p.Unit,
			&p.PurchaseDate, &coopID, &consumed, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if coopID.Valid {
			p.CoopID = &coopID.UUID
		}
		if consumed.Valid {
			p.ConsumedDate = &consumed.Time
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}

func (r *PurchaseRepository) Store(ctx context.Context, p *domain.Purchase) error {
	query := `
        INSERT INTO purchases (id, tenant_id, name, type, amount, quantity, unit, purchase_date, coop_id, consumed_date, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err := r.db.ExecContext(ctx, query, p.ID, p.TenantID, p.Name, p.Type, p.Amount, p.Quantity,
		p.Unit, p.PurchaseDate, p.CoopID, p.ConsumedDate, p.Notes, p.CreatedAt, p.UpdatedAt)
	return translate(err)
}

func (r *PurchaseRepository) Update(ctx context.Context, p *domain.Purchase) error {
	query := `
        UPDATE purchases SET name = $2, type = $3, amount = $4, quantity = $5, unit = $6,
            purchase_date = $7, coop_id = $8, consumed_date = $9, notes = $10, updated_at = $11
        WHERE id = $1
    `
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Type, p.Amount, p.Quantity, p.Unit,
		p.PurchaseDate, p.CoopID, p.ConsumedDate, p.Notes, p.UpdatedAt)
	return translate(err)
}

func (r *PurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	return err
}
