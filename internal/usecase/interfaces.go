package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
)

// IndexProvider resolves published monthly index rates. The returned
// slice is aligned one-to-one with the requested periods; months with
// no published value come back as zero (a legitimate rate), while a
// failure to reach the series at all is an error.
type IndexProvider interface {
	MonthlyRates(ctx context.Context, code domain.IndexCode, periods []domain.Period) ([]decimal.Decimal, error)
}

// CalculationRepository persists assembled calculation results verbatim.
type CalculationRepository interface {
	Save(ctx context.Context, record *domain.CalculationRecord) error
	GetByID(ctx context.Context, id string) (*domain.CalculationRecord, error)
	List(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error)
}

// Cache defines byte-level caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
