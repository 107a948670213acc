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

// SettlementUsecase handles liquidação de sentença: multiple dated
// installments, each corrected and interest-bearing from its own due
// date, aggregated with cascading surcharges.
type SettlementUsecase struct {
	provider IndexProvider
	rec      recorder
}

// NewSettlementUsecase creates a new SettlementUsecase.
func NewSettlementUsecase(provider IndexProvider, repo CalculationRepository, idGen IDGenerator, logger zerolog.Logger) *SettlementUsecase {
	return &SettlementUsecase{
		provider: provider,
		rec:      recorder{repo: repo, idGen: idGen, logger: logger},
	}
}

// SettlementItemInput is one installment of the settlement request.
type SettlementItemInput struct {
	Label           string
	Amount          decimal.Decimal
	DueDate         time.Time
	ApplyCorrection bool
	ApplyInterest   bool
}

// SurchargeInput is one ordered surcharge percentage.
type SurchargeInput struct {
	Label   string
	Percent decimal.Decimal
}

// SettlementInput represents one settlement request.
type SettlementInput struct {
	Items           []SettlementItemInput
	CalculationDate time.Time
	Index           domain.IndexCode
	InterestMode    domain.InterestMode
	// MonthlyRate is the interest fraction per month. Zero falls back
	// to the statutory 1%/month.
	MonthlyRate decimal.Decimal
	Surcharges  []SurchargeInput
}

// SettlementOutput pairs the stored record ID with the full result.
type SettlementOutput struct {
	ID     string
	Result *domain.SettlementResult
}

// Settle aggregates all items and stores the result. Item validation is
// all-or-nothing; one bad installment fails the whole settlement.
func (uc *SettlementUsecase) Settle(ctx context.Context, in SettlementInput) (*SettlementOutput, error) {
	timer := time.Now()

	result, err := uc.settle(ctx, in)
	if err != nil {
		metrics.CalculationErrors.WithLabelValues(string(domain.KindSettlement)).Inc()
		return nil, err
	}

	metrics.CalculationsTotal.WithLabelValues(string(domain.KindSettlement)).Inc()
	metrics.CalculationDuration.WithLabelValues(string(domain.KindSettlement)).Observe(time.Since(timer).Seconds())

	id, err := uc.rec.record(ctx, domain.KindSettlement, in, result)
	if err != nil {
		return nil, err
	}

	return &SettlementOutput{ID: id, Result: result}, nil
}

func (uc *SettlementUsecase) settle(ctx context.Context, in SettlementInput) (*domain.SettlementResult, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: settlement requires at least one item", domain.ErrInvalidAmount)
	}
	if len(in.Items) > MaxSettlementItems {
		return nil, fmt.Errorf("%w: settlement limited to %d items, got %d",
			domain.ErrInvalidAmount, MaxSettlementItems, len(in.Items))
	}

	items := make([]domain.CashFlowItem, len(in.Items))
	earliest := in.Items[0].DueDate
	needsCorrection := false

	for i, item := range in.Items {
		items[i] = domain.CashFlowItem{
			Label:           item.Label,
			Amount:          item.Amount,
			DueDate:         item.DueDate,
			ApplyCorrection: item.ApplyCorrection,
			ApplyInterest:   item.ApplyInterest,
		}
		if item.DueDate.Before(earliest) {
			earliest = item.DueDate
		}
		if item.ApplyCorrection {
			needsCorrection = true
		}
	}

	settle := domain.SettlementInput{
		Items:           items,
		CalculationDate: in.CalculationDate,
	}

	rate := in.MonthlyRate
	if rate.IsZero() {
		rate = DefaultLatePaymentMonthlyRate
	}
	settle.Interest = &domain.InterestSpec{
		Mode: in.InterestMode,
		Rate: domain.MonthlyRate(rate),
	}

	if needsCorrection {
		// One bulk resolution covers every item: the shared resolver
		// spans from the earliest due month through the calculation
		// month and each item reads its own subrange.
		if in.CalculationDate.Before(earliest) {
			return nil, fmt.Errorf("%w: earliest item due %s, calculation date %s",
				domain.ErrFutureDueDate,
				earliest.Format("2006-01-02"), in.CalculationDate.Format("2006-01-02"))
		}

		periods, err := domain.Sequence(earliest, in.CalculationDate)
		if err != nil {
			return nil, err
		}

		resolve, err := ResolveRates(ctx, uc.provider, in.Index, periods)
		if err != nil {
			return nil, err
		}

		settle.Correction = &domain.CorrectionSpec{Index: in.Index, Resolve: resolve}
	}

	for _, s := range in.Surcharges {
		settle.Surcharges = append(settle.Surcharges, domain.Surcharge{
			Label:   s.Label,
			Percent: s.Percent,
		})
	}

	return domain.Settle(settle)
}
