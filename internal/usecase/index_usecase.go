package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
)

// IndexUsecase exposes resolved index series for inspection.
type IndexUsecase struct {
	provider IndexProvider
}

// NewIndexUsecase creates a new IndexUsecase.
func NewIndexUsecase(provider IndexProvider) *IndexUsecase {
	return &IndexUsecase{provider: provider}
}

// RatePoint is one month of a resolved index series.
type RatePoint struct {
	Period domain.Period
	Rate   decimal.Decimal
}

// Rates resolves the series for [from, to], one point per month.
func (uc *IndexUsecase) Rates(ctx context.Context, code domain.IndexCode, from, to time.Time) ([]RatePoint, error) {
	periods, err := domain.Sequence(from, to)
	if err != nil {
		return nil, err
	}

	rates, err := uc.provider.MonthlyRates(ctx, code, periods)
	if err != nil {
		return nil, err
	}

	points := make([]RatePoint, len(periods))
	for i, p := range periods {
		points[i] = RatePoint{Period: p, Rate: rates[i]}
	}

	return points, nil
}

// CalculationQueryUsecase reads back stored calculations.
type CalculationQueryUsecase struct {
	repo CalculationRepository
}

// NewCalculationQueryUsecase creates a new CalculationQueryUsecase.
func NewCalculationQueryUsecase(repo CalculationRepository) *CalculationQueryUsecase {
	return &CalculationQueryUsecase{repo: repo}
}

// Get returns one stored calculation by ID.
func (uc *CalculationQueryUsecase) Get(ctx context.Context, id string) (*domain.CalculationRecord, error) {
	return uc.repo.GetByID(ctx, id)
}

// List returns stored calculations, newest first.
func (uc *CalculationQueryUsecase) List(ctx context.Context, limit, offset int) ([]*domain.CalculationRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.List(ctx, limit, offset)
}
