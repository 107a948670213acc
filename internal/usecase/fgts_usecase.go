package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/infrastructure/metrics"
)

// FGTSUsecase projects an FGTS balance: monthly employer deposits of 8%
// of salary, corrected by TR and earning 3% per year compounded on the
// corrected balance.
type FGTSUsecase struct {
	provider IndexProvider
	rec      recorder
}

// NewFGTSUsecase creates a new FGTSUsecase.
func NewFGTSUsecase(provider IndexProvider, repo CalculationRepository, idGen IDGenerator, logger zerolog.Logger) *FGTSUsecase {
	return &FGTSUsecase{
		provider: provider,
		rec:      recorder{repo: repo, idGen: idGen, logger: logger},
	}
}

// FGTSInput represents one FGTS projection request.
type FGTSInput struct {
	// MonthlySalary is the gross salary the 8% deposit is taken from.
	MonthlySalary decimal.Decimal
	// Start is the first deposit month, End the balance date.
	Start time.Time
	End   time.Time
}

// Project builds one deposit per month of employment and settles the
// series through the engine.
func (uc *FGTSUsecase) Project(ctx context.Context, in FGTSInput) (*SettlementOutput, error) {
	timer := time.Now()

	result, err := uc.project(ctx, in)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues(string(domain.KindFGTS)).Inc()
		return nil, err
	}

	metrics.CalculationsTotal.WithLabelValues(string(domain.KindFGTS)).Inc()
	metrics.CalculationDuration.WithLabelValues(string(domain.KindFGTS)).Observe(time.Since(timer).Seconds())

	id, err := uc.rec.record(ctx, domain.KindFGTS, in, result)
	if err != nil {
		return nil, err
	}

	return &SettlementOutput{ID: id, Result: result}, nil
}

func (uc *FGTSUsecase) project(ctx context.Context, in FGTSInput) (*domain.SettlementResult, error) {
	if in.MonthlySalary.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: salary %s", domain.ErrInvalidAmount, in.MonthlySalary)
	}

	periods, err := domain.Sequence(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	resolve, err := ResolveRates(ctx, uc.provider, domain.IndexTR, periods)
	if err != nil {
		return nil, err
	}

	deposit := in.MonthlySalary.Mul(FGTSDepositRate)
	items := make([]domain.CashFlowItem, 0, len(periods))
	for _, p := range periods {
		items = append(items, domain.CashFlowItem{
			Label:           fmt.Sprintf("depósito %s", p),
			Amount:          deposit,
			DueDate:         time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC),
			ApplyCorrection: true,
			ApplyInterest:   true,
		})
	}

	return domain.Settle(domain.SettlementInput{
		Items:           items,
		CalculationDate: in.End,
		Correction:      &domain.CorrectionSpec{Index: domain.IndexTR, Resolve: resolve},
		Interest: &domain.InterestSpec{
			Mode:        domain.InterestCompound,
			Rate:        domain.AnnualRate(FGTSAnnualInterest),
			OnCorrected: true,
		},
	})
}
