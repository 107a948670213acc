package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CorrectionStep is one period of the monetary correction fold.
type CorrectionStep struct {
	Period    Period
	Rate      decimal.Decimal
	Factor    decimal.Decimal
	Corrected decimal.Decimal
}

// Accumulate walks the period sequence compounding the index rate into
// a running correction factor.
//
// A zero rate is a legitimate value (the referential rate TR has been
// zero for years at a stretch) and contributes a neutral multiplier. A
// resolver failure is propagated, never defaulted to zero: silently
// treating an unavailable index as "no inflation" would mask a data
// problem inside a legally binding number.
func Accumulate(principal decimal.Decimal, periods []Period, resolve RateFunc) ([]CorrectionStep, error) {
	steps := make([]CorrectionStep, 0, len(periods))
	factor := one

	for _, p := range periods {
		rate := decimal.Zero
		if resolve != nil {
			r, err := resolve(p)
			if err != nil {
				return nil, fmt.Errorf("%w: period %s: %v", ErrRateResolution, p, err)
			}
			rate = r
		}

		factor = factor.Mul(one.Add(rate))
		steps = append(steps, CorrectionStep{
			Period:    p,
			Rate:      rate,
			Factor:    factor,
			Corrected: principal.Mul(factor),
		})
	}

	return steps, nil
}
