package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowItem is one dated amount inside a settlement: an installment,
// a salary parcel, a periodic deposit. Each item is independently
// corrected and interest-bearing from its own due date.
type CashFlowItem struct {
	Label           string
	Amount          decimal.Decimal
	DueDate         time.Time
	ApplyCorrection bool
	ApplyInterest   bool
}

// Surcharge is an additive percentage charge layered on the settled
// subtotal: attorney fees, court costs, statutory penalty. Percent is
// expressed as a percentage (10 = 10%).
type Surcharge struct {
	Label   string
	Percent decimal.Decimal
}

// SettlementInput describes a full liquidação: the items, the date the
// calculation is fixed at, the shared correction/interest configuration
// and the ordered surcharges.
type SettlementInput struct {
	Items           []CashFlowItem
	CalculationDate time.Time
	Correction      *CorrectionSpec
	Interest        *InterestSpec
	Surcharges      []Surcharge
}

// ItemResult pairs a cash-flow item with its full engine result.
type ItemResult struct {
	Label  string
	Result *Result
}

// SurchargeResult records one applied surcharge: the base it was
// computed on and the resulting amount.
type SurchargeResult struct {
	Label   string
	Percent decimal.Decimal
	Base    decimal.Decimal
	Amount  decimal.Decimal
}

// SettlementResult is the aggregate of all items plus surcharges.
type SettlementResult struct {
	Items      []ItemResult
	Subtotal   decimal.Decimal
	Surcharges []SurchargeResult
	GrandTotal decimal.Decimal
}

// Settle runs each item through the engine from its own due date
// through the calculation date and layers the surcharges on top.
//
// Validation is all-or-nothing: a single bad item fails the whole call.
// A partial settlement total would be legally incorrect, so no item is
// ever silently dropped.
//
// Surcharges cascade: each percentage applies to the running subtotal
// after all prior surcharges, never to the original principal. The
// caller controls ordering, so a late-payment penalty meant to apply
// after fees is simply listed last.
func Settle(in SettlementInput) (*SettlementResult, error) {
	for _, item := range in.Items {
		if item.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: item %q amount %s", ErrInvalidAmount, item.Label, item.Amount)
		}
		if item.DueDate.After(in.CalculationDate) {
			return nil, fmt.Errorf("%w: item %q due %s, calculation date %s",
				ErrFutureDueDate, item.Label,
				item.DueDate.Format("2006-01-02"), in.CalculationDate.Format("2006-01-02"))
		}
	}

	results := make([]ItemResult, 0, len(in.Items))
	subtotal := decimal.Zero

	for _, item := range in.Items {
		// Accrual starts the month after the due month: an item due in
		// January and settled the following January has seen twelve
		// elapsed months, not thirteen. An item maturing in the
		// calculation month contributes its nominal amount.
		start := time.Date(item.DueDate.Year(), item.DueDate.Month()+1, 1, 0, 0, 0, 0, time.UTC)

		var result *Result
		if PeriodOf(in.CalculationDate).Before(PeriodOf(start)) {
			result = assembleResult(item.Amount, nil)
		} else {
			calc := CalculationInput{
				Principal: item.Amount,
				Start:     start,
				End:       in.CalculationDate,
			}
			if item.ApplyCorrection {
				calc.Correction = in.Correction
			}
			if item.ApplyInterest {
				calc.Interest = in.Interest
			}

			var err error
			result, err = Calculate(calc)
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", item.Label, err)
			}
		}

		results = append(results, ItemResult{Label: item.Label, Result: result})
		subtotal = subtotal.Add(result.TotalAmount)
	}

	applied := make([]SurchargeResult, 0, len(in.Surcharges))
	running := subtotal

	for _, s := range in.Surcharges {
		amount := running.Mul(s.Percent).Div(hundred)
		applied = append(applied, SurchargeResult{
			Label:   s.Label,
			Percent: s.Percent,
			Base:    running,
			Amount:  amount,
		})
		running = running.Add(amount)
	}

	return &SettlementResult{
		Items:      results,
		Subtotal:   subtotal,
		Surcharges: applied,
		GrandTotal: running,
	}, nil
}
