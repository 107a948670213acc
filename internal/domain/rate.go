package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Intermediate arithmetic keeps sub-cent precision across many
	// periods; rounding to 2 decimals happens only at presentation.
	if decimal.DivisionPrecision < 16 {
		decimal.DivisionPrecision = 16
	}
}

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// InterestMode selects how interest accrues over the period sequence.
type InterestMode int

const (
	// InterestSimple accrues linearly on a fixed base.
	InterestSimple InterestMode = iota
	// InterestCompound reinvests prior interest into the base.
	InterestCompound
)

func (m InterestMode) String() string {
	switch m {
	case InterestSimple:
		return "simple"
	case InterestCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// ParseInterestMode parses the wire representation of a mode.
func ParseInterestMode(s string) (InterestMode, error) {
	switch s {
	case "simple", "":
		return InterestSimple, nil
	case "compound":
		return InterestCompound, nil
	default:
		return InterestSimple, fmt.Errorf("%w: unknown interest mode %q", ErrInvalidRate, s)
	}
}

// RateFunc resolves the fractional correction rate for a period.
// A nil RateFunc means no correction (every period is neutral).
type RateFunc func(Period) (decimal.Decimal, error)

// RateSpec is a literal contractual or legal-fixed rate, given either
// per month or per year.
type RateSpec struct {
	fraction decimal.Decimal
	annual   bool
}

// MonthlyRate builds a RateSpec from a monthly fraction (0.01 = 1%/month).
func MonthlyRate(fraction decimal.Decimal) RateSpec {
	return RateSpec{fraction: fraction}
}

// AnnualRate builds a RateSpec from an annual fraction (0.12 = 12%/year).
func AnnualRate(fraction decimal.Decimal) RateSpec {
	return RateSpec{fraction: fraction, annual: true}
}

// MonthlyFraction returns the per-period fraction for the given mode.
//
// An annual rate under compound semantics converts through the
// compounding identity (1+monthly)^12 = 1+annual. Naive division by 12
// is only correct for simple interest, where accrual is linear.
func (r RateSpec) MonthlyFraction(mode InterestMode) (decimal.Decimal, error) {
	if r.fraction.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: rate must not be negative, got %s", ErrInvalidRate, r.fraction)
	}

	if !r.annual {
		return r.fraction, nil
	}

	if mode == InterestSimple {
		return r.fraction.Div(twelve), nil
	}

	root, err := one.Add(r.fraction).PowWithPrecision(one.Div(twelve), 16)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: annual-to-monthly conversion: %v", ErrInvalidRate, err)
	}

	return root.Sub(one), nil
}
