package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
)

// IndexRateRepository resolves monthly index rates from the
// index_rates table.
type IndexRateRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewIndexRateRepository creates a new IndexRateRepository.
func NewIndexRateRepository(pool *pgxpool.Pool, retrier *Retrier) *IndexRateRepository {
	return &IndexRateRepository{pool: pool, retrier: retrier}
}

const selectRatesQuery = `
SELECT year, month, rate
FROM index_rates
WHERE index_code = $1
  AND (year, month) >= ($2, $3)
  AND (year, month) <= ($4, $5)
ORDER BY year, month`

// MonthlyRates returns one rate per requested period, aligned by
// position. Months without a published rate resolve to zero, so a
// stale rate table degrades to a neutral correction instead of
// failing the calculation.
func (r *IndexRateRepository) MonthlyRates(ctx context.Context, code domain.IndexCode, periods []domain.Period) ([]decimal.Decimal, error) {
	if len(periods) == 0 {
		return nil, nil
	}

	first := periods[0]
	last := periods[len(periods)-1]

	found := make(map[domain.Period]decimal.Decimal, len(periods))

	err := r.retrier.Retry(ctx, func() error {
		rows, err := r.pool.Query(ctx, selectRatesQuery,
			string(code), first.Year, int(first.Month), last.Year, int(last.Month))
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				year  int
				month int
				rate  pgtype.Numeric
			)
			if err := rows.Scan(&year, &month, &rate); err != nil {
				return err
			}
			found[domain.Period{Year: year, Month: timeMonth(month)}] = numericToDecimal(rate)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query index rates for %s: %w", code, err)
	}

	rates := make([]decimal.Decimal, len(periods))
	for i, p := range periods {
		rates[i] = found[p]
	}

	return rates, nil
}

// UpsertRate stores or replaces one monthly rate. Used by seeding and
// by rate table maintenance.
func (r *IndexRateRepository) UpsertRate(ctx context.Context, code domain.IndexCode, period domain.Period, rate decimal.Decimal) error {
	const query = `
INSERT INTO index_rates (index_code, year, month, rate)
VALUES ($1, $2, $3, $4)
ON CONFLICT (index_code, year, month) DO UPDATE SET rate = EXCLUDED.rate`

	_, err := r.pool.Exec(ctx, query, string(code), period.Year, int(period.Month), decimalToNumeric(rate))
	return err
}
