package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
)

// MockIndexProvider is a mock implementation of IndexProvider.
type MockIndexProvider struct {
	MonthlyRatesFunc func(ctx context.Context, code domain.IndexCode, periods []domain.Period) ([]decimal.Decimal, error)
}

func NewMockIndexProvider() *MockIndexProvider {
	return &MockIndexProvider{}
}

func (m *MockIndexProvider) MonthlyRates(ctx context.Context, code domain.IndexCode, periods []domain.Period) ([]decimal.Decimal, error) {
	if m.MonthlyRatesFunc != nil {
		return m.MonthlyRatesFunc(ctx, code, periods)
	}
	return make([]decimal.Decimal, len(periods)), nil
}

// MockCalculationRepository is a mock implementation of CalculationRepository.
type MockCalculationRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.CalculationRecord

	SaveFunc    func(ctx context.Context, record *domain.CalculationRecord) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.CalculationRecord, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error)
}

func NewMockCalculationRepository() *MockCalculationRepository {
	return &MockCalculationRepository{
		records: make(map[string]*domain.CalculationRecord),
	}
}

func (m *MockCalculationRepository) Save(ctx context.Context, record *domain.CalculationRecord) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockCalculationRepository) GetByID(ctx context.Context, id string) (*domain.CalculationRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[id]; ok {
		return rec, nil
	}
	return nil, domain.ErrCalculationNotFound
}

func (m *MockCalculationRepository) List(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]*domain.CalculationRecord, 0, len(m.records))
	for _, rec := range m.records {
		records = append(records, rec)
	}
	return records, nil
}

// Stored returns the record saved under id, for assertions.
func (m *MockCalculationRepository) Stored(id string) *domain.CalculationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.records[id]
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "calc-" + string(rune('0'+m.counter%10))
}
