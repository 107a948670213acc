package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/infrastructure/metrics"
)

// CorrectionUsecase handles correção monetária: correction by a
// published index, optionally with statutory interest on top.
type CorrectionUsecase struct {
	provider IndexProvider
	rec      recorder
}

// NewCorrectionUsecase creates a new CorrectionUsecase.
func NewCorrectionUsecase(provider IndexProvider, repo CalculationRepository, idGen IDGenerator, logger zerolog.Logger) *CorrectionUsecase {
	return &CorrectionUsecase{
		provider: provider,
		rec:      recorder{repo: repo, idGen: idGen, logger: logger},
	}
}

// CorrectionInput represents one correction request.
type CorrectionInput struct {
	Principal       decimal.Decimal
	Start           time.Time
	End             time.Time
	Index           domain.IndexCode
	IncludeInterest bool
	InterestMode    domain.InterestMode
	// MonthlyRate is the interest fraction per month (0.01 = 1%).
	// Zero falls back to the statutory default.
	MonthlyRate decimal.Decimal
}

// CalculationOutput pairs the stored record ID with the full result.
type CalculationOutput struct {
	ID     string
	Result *domain.Result
}

// Correct runs the correction calculation and stores the result.
func (uc *CorrectionUsecase) Correct(ctx context.Context, in CorrectionInput) (*CalculationOutput, error) {
	timer := time.Now()

	result, err := uc.calculate(ctx, in)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues(string(domain.KindCorrection)).Inc()
		return nil, err
	}

	metrics.CalculationsTotal.WithLabelValues(string(domain.KindCorrection)).Inc()
	metrics.CalculationDuration.WithLabelValues(string(domain.KindCorrection)).Observe(time.Since(timer).Seconds())
	metrics.CalculationPeriods.WithLabelValues(string(domain.KindCorrection)).Observe(float64(len(result.Ledger)))

	id, err := uc.rec.record(ctx, domain.KindCorrection, in, result)
	if err != nil {
		return nil, err
	}

	return &CalculationOutput{ID: id, Result: result}, nil
}

func (uc *CorrectionUsecase) calculate(ctx context.Context, in CorrectionInput) (*domain.Result, error) {
	periods, err := domain.Sequence(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	resolve, err := ResolveRates(ctx, uc.provider, in.Index, periods)
	if err != nil {
		return nil, err
	}

	calc := domain.CalculationInput{
		Principal:  in.Principal,
		Start:      in.Start,
		End:        in.End,
		Correction: &domain.CorrectionSpec{Index: in.Index, Resolve: resolve},
	}

	if in.IncludeInterest {
		rate := in.MonthlyRate
		if rate.IsZero() {
			rate = DefaultLatePaymentMonthlyRate
		}
		calc.Interest = &domain.InterestSpec{
			Mode: in.InterestMode,
			Rate: domain.MonthlyRate(rate),
		}
	}

	return domain.Calculate(calc)
}
