package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// DailyRecordRepository implements domain.DailyRecordStore on PostgreSQL. The
// (tenant_id, flock_id, record_date) unique index is the real guard behind
// the handlers' pre-check; its violation comes back as a conflict via
// translate.
type DailyRecordRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewDailyRecordRepository creates a new PostgreSQL daily-record repository.
func NewDailyRecordRepository(db *sql.DB, logger *slog.Logger) *DailyRecordRepository {
	return &DailyRecordRepository{db: db, logger: logger}
}

func (r *DailyRecordRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DailyRecord, error) {
	query := `
        SELECT id, tenant_id, flock_id, record_date, egg_count, notes, created_at, updated_at
        FROM daily_records WHERE tenant_id = $1 AND id = $2
    `
	var rec domain.DailyRecord
	err := r.db.QueryRowContext(ctx, query, tenantID, id).Scan(
		&rec.ID, &rec.TenantID, &rec.FlockID, &rec.RecordDate, &rec.EggCount,
		&rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *DailyRecordRepository) FindByFlock(ctx context.Context, tenantID, flockID uuid.UUID) ([]*domain.DailyRecord, error) {
	query := `
        SELECT id, tenant_id, flock_id, record_date, egg_count, notes, created_at, updated_at
        FROM daily_records WHERE tenant_id = $1 AND flock_id = $2 ORDER BY record_date DESC
    `
	rows, err := r.db.QueryContext(ctx, query, tenantID, flockID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.DailyRecord
	for rows.Next() {
		var rec domain.DailyRecord
		if err := rows.Scan(&rec.ID, &rec.TenantID, &rec.FlockID, &rec.RecordDate,
			&rec.EggCount, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *DailyRecordRepository) ExistsForDate(ctx context.Context, tenantID, flockID uuid.UUID, recordDate time.Time, excludeID uuid.UUID) (bool, error) {
	query := `
        SELECT EXISTS(
            SELECT 1 FROM daily_records
            WHERE tenant_id = $1 AND flock_id = $2 AND record_date = $3 AND id <> $4
        )
    `
	var exists bool
	err := r.db.QueryRowContext(ctx, query, tenantID, flockID, recordDate, excludeID).Scan(&exists)
	return exists, err
}

func (r *DailyRecordRepository) Store(ctx context.Context, rec *domain.DailyRecord) error {
	query := `
        INSERT INTO daily_records (id, tenant_id, flock_id, record_date, egg_count, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.TenantID, rec.FlockID, rec.RecordDate,
		rec.EggCount, rec.Notes, rec.CreatedAt, rec.UpdatedAt)
	return translate(err)
}

func (r *DailyRecordRepository) Update(ctx context.Context, rec *domain.DailyRecord) error {
	query := `
        UPDATE daily_records SET record_date = $3, egg_count = $4, notes = $5, updated_at = $6
        WHERE tenant_id = $1 AND id = $2
    `
	_, err := r.db.ExecContext(ctx, query, rec.TenantID, rec.ID, rec.RecordDate, rec.EggCount, rec.Notes, rec.UpdatedAt)
	return translate(err)
}

func (r *DailyRecordRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM daily_records WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	return err
}
