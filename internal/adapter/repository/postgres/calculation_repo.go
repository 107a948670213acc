package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lfsc/juscalc/internal/domain"
)

// CalculationRepository implements usecase.CalculationRepository.
type CalculationRepository struct {
	pool *pgxpool.Pool
}

// NewCalculationRepository creates a new CalculationRepository.
func NewCalculationRepository(pool *pgxpool.Pool) *CalculationRepository {
	return &CalculationRepository{pool: pool}
}

// Save stores a calculation record.
func (r *CalculationRepository) Save(ctx context.Context, rec *domain.CalculationRecord) error {
	const query = `
INSERT INTO calculations (id, kind, request, result, created_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, string(rec.Kind), rec.Request, rec.Result, timeToPgTimestamptz(rec.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert calculation %s: %w", rec.ID, err)
	}

	return nil
}

// GetByID retrieves a calculation record by ID.
func (r *CalculationRepository) GetByID(ctx context.Context, id string) (*domain.CalculationRecord, error) {
	const query = `
SELECT id, kind, request, result, created_at
FROM calculations
WHERE id = $1`

	rec, err := scanCalculation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCalculationNotFound
		}
		return nil, err
	}

	return rec, nil
}

// List retrieves calculation records, newest first.
func (r *CalculationRepository) List(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error) {
	const query = `
SELECT id, kind, request, result, created_at
FROM calculations
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]*domain.CalculationRecord, 0, limit)
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func scanCalculation(row pgx.Row) (*domain.CalculationRecord, error) {
	var (
		rec       domain.CalculationRecord
		kind      string
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&rec.ID, &kind, &rec.Request, &rec.Result, &createdAt); err != nil {
		return nil, err
	}

	rec.Kind = domain.CalculationKind(kind)
	rec.CreatedAt = createdAt.Time

	return &rec, nil
}
