package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flockwise/flockwise/internal/domain"
)

// MockCoopStore is a mock implementation of domain.CoopStore for testing.
type MockCoopStore struct {
	mu           sync.Mutex
	FindResult   *domain.Coop
	ListResult   []*domain.Coop
	Stored       []*domain.Coop
	Updated      []*domain.Coop
	DeletedIDs   []uuid.UUID
	FindErr      error
	ListErr      error
	StoreErr     error
	UpdateErr    error
	DeleteErr    error
	FindByIDCall int
}

func (m *MockCoopStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Coop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindByIDCall++
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.FindResult, nil
}

func (m *MockCoopStore) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.Coop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListResult, nil
}

func (m *MockCoopStore) Store(ctx context.Context, c *domain.Coop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Stored = append(m.Stored, c)
	return nil
}

func (m *MockCoopStore) Update(ctx context.Context, c *domain.Coop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Updated = append(m.Updated, c)
	return nil
}

func (m *MockCoopStore) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

// MockFlockStore is a mock implementation of domain.FlockStore for testing.
type MockFlockStore struct {
	mu               sync.Mutex
	FindResult       *domain.Flock
	ListResult       []*domain.Flock
	IdentifierTaken  bool
	CoopCount        int
	Stored           []*domain.Flock
	Updated          []*domain.Flock
	FindErr          error
	ListErr          error
	ExistsErr        error
	CountErr         error
	StoreErr         error
	UpdateErr        error
	ExistsCalls      int
	LastExcludedID   uuid.UUID
	LastProbedIdent  string
	LastProbedCoopID uuid.UUID
}

func (m *MockFlockStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Flock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.FindResult, nil
}

func (m *MockFlockStore) FindByCoop(ctx context.Context, tenantID, coopID uuid.UUID) ([]*domain.Flock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListResult, nil
}

func (m *MockFlockStore) IdentifierExists(ctx context.Context, tenantID, coopID uuid.UUID, identifier string, excludeID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExistsCalls++
	m.LastProbedCoopID = coopID
	m.LastProbedIdent = identifier
	m.LastExcludedID = excludeID
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.IdentifierTaken, nil
}

func (m *MockFlockStore) CountByCoop(ctx context.Context, tenantID, coopID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return m.CoopCount, nil
}

func (m *MockFlockStore) Store(ctx context.Context, f *domain.Flock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Stored = append(m.Stored, f)
	return nil
}

func (m *MockFlockStore) Update(ctx context.Context, f *domain.Flock) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Updated = append(m.Updated, f)
	return nil
}

// MockDailyRecordStore is a mock implementation of domain.DailyRecordStore.
type MockDailyRecordStore struct {
	mu             sync.Mutex
	FindResult     *domain.DailyRecord
	ListResult     []*domain.DailyRecord
	DateTaken      bool
	Stored         []*domain.DailyRecord
	Updated        []*domain.DailyRecord
	DeletedIDs     []uuid.UUID
	FindErr        error
	ListErr        error
	ExistsErr      error
	StoreErr       error
	UpdateErr      error
	DeleteErr      error
	ExistsCalls    int
	LastProbedDate time.Time
	LastExcludedID uuid.UUID
}

func (m *MockDailyRecordStore) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.DailyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.FindResult, nil
}

func (m *MockDailyRecordStore) FindByFlock(ctx context.Context, tenantID, flockID uuid.UUID) ([]*domain.DailyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListResult, nil
}

func (m *MockDailyRecordStore) ExistsForDate(ctx context.Context, tenantID, flockID uuid.UUID, recordDate time.Time, excludeID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExistsCalls++
	m.LastProbedDate = recordDate
	m.LastExcludedID = excludeID
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.DateTaken, nil
}

func (m *MockDailyRecordStore) Store(ctx context.Context, r *domain.DailyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Stored = append(m.Stored, r)
	return nil
}

func (m *MockDailyRecordStore) Update(ctx context.Context, r *domain.DailyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Updated = append(m.Updated, r)
	return nil
}

func (m *MockDailyRecordStore) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

// MockPurchaseStore is a mock implementation of domain.PurchaseStore.
type MockPurchaseStore struct {
	mu         sync.Mutex
	FindResult *domain.Purchase
	ListResult []*domain.Purchase
	Stored     []*domain.Purchase
	Updated    []*domain.Purchase
	DeletedIDs []uuid.UUID
	FindErr    error
	ListErr    error
	StoreErr   error
	UpdateErr  error
	DeleteErr  error
}

func (m *MockPurchaseStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	return m.FindResult, nil
}

func (m *MockPurchaseStore) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListResult, nil
}

func (m *MockPurchaseStore) Store(ctx context.Context, p *domain.Purchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StoreErr != nil {
		return m.StoreErr
	}
	m.Stored = append(m.Stored, p)
	return nil
}

func (m *MockPurchaseStore) Update(ctx context.Context, p *domain.Purchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.Updated = append(m.Updated, p)
	return nil
}

func (m *MockPurchaseStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}
