package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// Queries serves the read side: plain lookups and listings with no business
// rules beyond the authorization gate and tenant scoping.
type Queries struct {
	coops     domain.CoopStore
	flocks    domain.FlockStore
	records   domain.DailyRecordStore
	purchases domain.PurchaseStore
	logger    *slog.Logger
}

// NewQueries creates the read-side service.
func NewQueries(coops domain.CoopStore, flocks domain.FlockStore, records domain.DailyRecordStore, purchases domain.PurchaseStore, logger *slog.Logger) *Queries {
	return &Queries{coops: coops, flocks: flocks, records: records, purchases: purchases, logger: logger}
}

// GetCoop returns one coop owned by the caller's tenant.
func (q *Queries) GetCoop(ctx context.Context, id uuid.UUID) (*CoopDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	coop, err := q.coops.FindByID(ctx, tenantID, id)
	if err != nil {
		q.logger.Error("failed to load coop", "error", err, "coop_id", id)
		return nil, domain.Failuref(err, "get", "coop")
	}
	if coop == nil {
		return nil, domain.NotFound("Coop")
	}
	return projectCoop(coop), nil
}

// ListCoops returns every coop of the caller's tenant.
func (q *Queries) ListCoops(ctx context.Context) ([]*CoopDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	coops, err := q.coops.FindByTenant(ctx, tenantID)
	if err != nil {
		q.logger.Error("failed to list coops", "error", err, "tenant_id", tenantID)
		return nil, domain.Failuref(err, "list", "coops")
	}
	dtos := make([]*CoopDTO, 0, len(coops))
	for _, c := range coops {
		dtos = append(dtos, projectCoop(c))
	}
	return dtos, nil
}

// GetFlock returns one flock with its composition history.
func (q *Queries) GetFlock(ctx context.Context, id uuid.UUID) (*FlockDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	flock, err := q.flocks.FindByID(ctx, tenantID, id)
	if err != nil {
		q.logger.Error("failed to load flock", "error", err, "flock_id", id)
		return nil, domain.Failuref(err, "get", "flock")
	}
	if flock == nil {
		return nil, domain.NotFound("Flock")
	}
	return projectFlock(flock), nil
}

// ListFlocks returns the flocks housed in a coop.
func (q *Queries) ListFlocks(ctx context.Context, coopID uuid.UUID) ([]*FlockDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	flocks, err := q.flocks.FindByCoop(ctx, tenantID, coopID)
	if err != nil {
		q.logger.Error("failed to list flocks", "error", err, "coop_id", coopID)
		return nil, domain.Failuref(err, "list", "flocks")
	}
	dtos := make([]*FlockDTO, 0, len(flocks))
	for _, f := range flocks {
		dtos = append(dtos, projectFlock(f))
	}
	return dtos, nil
}

// ListDailyRecords returns a flock's egg records. Locked records remain
// readable; the same-day window only gates mutation.
func (q *Queries) ListDailyRecords(ctx context.Context, flockID uuid.UUID) ([]*DailyRecordDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	records, err := q.records.FindByFlock(ctx, tenantID, flockID)
	if err != nil {
		q.logger.Error("failed to list daily records", "error", err, "flock_id", flockID)
		return nil, domain.Failuref(err, "list", "daily records")
	}
	dtos := make([]*DailyRecordDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, projectDailyRecord(r))
	}
	return dtos, nil
}

// ListPurchases returns the tenant's purchases.
func (q *Queries) ListPurchases(ctx context.Context) ([]*PurchaseDTO, error) {
	tenantID, err := requireTenant(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := q.purchases.FindByTenant(ctx, tenantID)
	if err != nil {
		q.logger.Error("failed to list purchases", "error", err, "tenant_id", tenantID)
		return nil, domain.Failuref(err, "list", "purchases")
	}
	dtos := make([]*PurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		dtos = append(dtos, projectPurchase(p))
	}
	return dtos, nil
}
