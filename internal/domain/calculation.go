package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CorrectionSpec configures the monetary-correction leg of a
// calculation. Resolve supplies the per-period fractional rate for
// Index; the engine never performs I/O itself, so the resolver must be
// backed by already-fetched data or one that handles its own retries.
type CorrectionSpec struct {
	Index   IndexCode
	Resolve RateFunc
}

// InterestSpec configures the interest leg of a calculation.
type InterestSpec struct {
	Mode InterestMode
	Rate RateSpec

	// OnCorrected makes compound interest accrue over the corrected
	// balance instead of the original principal. Ignored in simple mode.
	OnCorrected bool
}

// CalculationInput is one engine invocation: a principal, a date
// interval and the optional correction and interest legs.
type CalculationInput struct {
	Principal  decimal.Decimal
	Start      time.Time
	End        time.Time
	Correction *CorrectionSpec
	Interest   *InterestSpec
}

// Result is the engine's public output shape. Values keep full internal
// precision; rounding to 2 decimals belongs to the presentation layer.
type Result struct {
	Principal         decimal.Decimal
	CorrectedValue    decimal.Decimal
	CorrectionAmount  decimal.Decimal
	InterestAmount    decimal.Decimal
	TotalAmount       decimal.Decimal
	AccumulatedFactor decimal.Decimal
	Ledger            []LedgerEntry
}

// Calculate runs the correction/interest recurrence over the monthly
// period sequence and assembles the auditable result.
//
// Pairing an interest-inclusive index (SELIC) with an interest request
// fails with ErrConflictingRate: the index already embeds interest and
// stacking a second layer would double-count it.
func Calculate(in CalculationInput) (*Result, error) {
	if in.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal %s", ErrInvalidAmount, in.Principal)
	}

	if in.Correction != nil && in.Interest != nil && in.Correction.Index.InterestInclusive() {
		return nil, fmt.Errorf("%w: index %s", ErrConflictingRate, in.Correction.Index)
	}

	periods, err := Sequence(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	var resolve RateFunc
	if in.Correction != nil {
		resolve = in.Correction.Resolve
	}

	corrected, err := Accumulate(in.Principal, periods, resolve)
	if err != nil {
		return nil, err
	}

	var interest []InterestStep
	if in.Interest != nil {
		monthly, err := in.Interest.Rate.MonthlyFraction(in.Interest.Mode)
		if err != nil {
			return nil, err
		}

		if in.Interest.Mode == InterestCompound && in.Interest.OnCorrected {
			interest = ApplyInterestOnCorrected(corrected, monthly)
		} else {
			interest = ApplyInterest(in.Principal, in.Interest.Mode, monthly, periods)
		}
	}

	ledger, err := BuildLedger(corrected, interest)
	if err != nil {
		return nil, err
	}

	return assembleResult(in.Principal, ledger), nil
}

// assembleResult folds the final ledger entry into the public result
// shape. Pure; the only failure modes are upstream.
func assembleResult(principal decimal.Decimal, ledger []LedgerEntry) *Result {
	result := &Result{
		Principal:         principal,
		CorrectedValue:    principal,
		CorrectionAmount:  decimal.Zero,
		InterestAmount:    decimal.Zero,
		TotalAmount:       principal,
		AccumulatedFactor: one,
		Ledger:            ledger,
	}

	if len(ledger) == 0 {
		return result
	}

	last := ledger[len(ledger)-1]
	result.CorrectedValue = last.Corrected
	result.CorrectionAmount = last.Corrected.Sub(principal)
	result.InterestAmount = last.Balance.Sub(last.Corrected)
	result.TotalAmount = last.Balance
	result.AccumulatedFactor = last.Factor

	return result
}
