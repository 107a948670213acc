package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/infrastructure/metrics"
)

// LatePaymentUsecase handles juros moratórios: interest on an overdue
// amount, optionally combined with monetary correction.
type LatePaymentUsecase struct {
	provider IndexProvider
	rec      recorder
}

// NewLatePaymentUsecase creates a new LatePaymentUsecase.
func NewLatePaymentUsecase(provider IndexProvider, repo CalculationRepository, idGen IDGenerator, logger zerolog.Logger) *LatePaymentUsecase {
	return &LatePaymentUsecase{
		provider: provider,
		rec:      recorder{repo: repo, idGen: idGen, logger: logger},
	}
}

// LatePaymentInput represents one late-payment interest request.
type LatePaymentInput struct {
	Principal decimal.Decimal
	Start     time.Time
	End       time.Time
	Mode      domain.InterestMode
	// MonthlyRate is the interest fraction per month. Zero falls back
	// to the statutory 1%/month.
	MonthlyRate decimal.Decimal
	// WithCorrection additionally corrects the principal by Index.
	WithCorrection bool
	Index          domain.IndexCode
}

// Apply runs the late-payment calculation and stores the result.
func (uc *LatePaymentUsecase) Apply(ctx context.Context, in LatePaymentInput) (*CalculationOutput, error) {
	timer := time.Now()

	result, err := uc.calculate(ctx, in)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues(string(domain.KindLatePayment)).Inc()
		return nil, err
	}

	metrics.CalculationsTotal.WithLabelValues(string(domain.KindLatePayment)).Inc()
	metrics.CalculationDuration.WithLabelValues(string(domain.KindLatePayment)).Observe(time.Since(timer).Seconds())
	metrics.CalculationPeriods.WithLabelValues(string(domain.KindLatePayment)).Observe(float64(len(result.Ledger)))

	id, err := uc.rec.record(ctx, domain.KindLatePayment, in, result)
	if err != nil {
		return nil, err
	}

	return &CalculationOutput{ID: id, Result: result}, nil
}

func (uc *LatePaymentUsecase) calculate(ctx context.Context, in LatePaymentInput) (*domain.Result, error) {
	rate := in.MonthlyRate
	if rate.IsZero() {
		rate = DefaultLatePaymentMonthlyRate
	}

	calc := domain.CalculationInput{
		Principal: in.Principal,
		Start:     in.Start,
		End:       in.End,
		Interest: &domain.InterestSpec{
			Mode: in.Mode,
			Rate: domain.MonthlyRate(rate),
		},
	}

	if in.WithCorrection {
		periods, err := domain.Sequence(in.Start, in.End)
		if err != nil {
			return nil, err
		}

		resolve, err := ResolveRates(ctx, uc.provider, in.Index, periods)
		if err != nil {
			return nil, err
		}

		calc.Correction = &domain.CorrectionSpec{Index: in.Index, Resolve: resolve}
	}

	return domain.Calculate(calc)
}
