package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one period of the memória de cálculo: the audit trail
// of how the final value was reached. Entries are append-only and
// ordered by period.
type LedgerEntry struct {
	Period    Period
	Rate      decimal.Decimal
	Factor    decimal.Decimal
	Corrected decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal
}

// BuildLedger zips the correction and interest sequences into one entry
// per period. The interest sequence may be empty when no interest was
// requested. Sequences that do not share an identical period sequence
// indicate a caller bug and fail with ErrMisalignedSequence.
func BuildLedger(corrected []CorrectionStep, interest []InterestStep) ([]LedgerEntry, error) {
	if len(interest) > 0 && len(interest) != len(corrected) {
		return nil, fmt.Errorf("%w: %d correction periods, %d interest periods",
			ErrMisalignedSequence, len(corrected), len(interest))
	}

	entries := make([]LedgerEntry, 0, len(corrected))
	for i, c := range corrected {
		entry := LedgerEntry{
			Period:    c.Period,
			Rate:      c.Rate,
			Factor:    c.Factor,
			Corrected: c.Corrected,
			Interest:  decimal.Zero,
			Balance:   c.Corrected,
		}

		if len(interest) > 0 {
			in := interest[i]
			if !in.Period.Equal(c.Period) {
				return nil, fmt.Errorf("%w: position %d has correction period %s, interest period %s",
					ErrMisalignedSequence, i, c.Period, in.Period)
			}
			entry.Interest = in.Accrued
			entry.Balance = c.Corrected.Add(in.Total)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
