package domain

import "github.com/shopspring/decimal"

// InterestStep is one period of interest accrual.
type InterestStep struct {
	Period  Period
	Rate    decimal.Decimal
	Accrued decimal.Decimal
	Total   decimal.Decimal
}

// ApplyInterest accrues interest over the period sequence.
//
// Simple mode charges base * rate every period: the base is fixed when
// the computation starts and never grows, matching the legal convention
// that simple interest is never compounded onto itself.
//
// Compound mode charges on the running balance, reinvesting prior
// interest. Zero periods yields an empty sequence, not an error.
func ApplyInterest(base decimal.Decimal, mode InterestMode, monthly decimal.Decimal, periods []Period) []InterestStep {
	steps := make([]InterestStep, 0, len(periods))
	total := decimal.Zero
	balance := base

	for _, p := range periods {
		var accrued decimal.Decimal
		switch mode {
		case InterestCompound:
			accrued = balance.Mul(monthly)
		default:
			accrued = base.Mul(monthly)
		}

		total = total.Add(accrued)
		balance = balance.Add(accrued)
		steps = append(steps, InterestStep{Period: p, Rate: monthly, Accrued: accrued, Total: total})
	}

	return steps
}

// ApplyInterestOnCorrected accrues compound interest on the corrected
// balance of each period instead of a fixed starting base. Used when
// the contract stipulates that interest compounds over the
// inflation-adjusted value.
func ApplyInterestOnCorrected(corrected []CorrectionStep, monthly decimal.Decimal) []InterestStep {
	steps := make([]InterestStep, 0, len(corrected))
	total := decimal.Zero

	for _, c := range corrected {
		accrued := c.Corrected.Add(total).Mul(monthly)
		total = total.Add(accrued)
		steps = append(steps, InterestStep{Period: c.Period, Rate: monthly, Accrued: accrued, Total: total})
	}

	return steps
}
