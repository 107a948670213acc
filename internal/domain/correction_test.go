package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func monthsFrom(start Period, n int) []Period {
	periods := make([]Period, 0, n)
	p := start
	for i := 0; i < n; i++ {
		periods = append(periods, p)
		p = p.Next()
	}
	return periods
}

func constantRate(rate string) RateFunc {
	r := decimal.RequireFromString(rate)
	return func(Period) (decimal.Decimal, error) { return r, nil }
}

func TestAccumulate_NeutralWhenRatesZero(t *testing.T) {
	principal := decimal.NewFromInt(10000)
	periods := monthsFrom(Period{Year: 2024, Month: time.January}, 6)

	steps, err := Accumulate(principal, periods, constantRate("0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(steps))
	}

	last := steps[len(steps)-1]
	if !last.Factor.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected factor 1, got %s", last.Factor)
	}
	if !last.Corrected.Equal(principal) {
		t.Errorf("expected corrected == principal, got %s", last.Corrected)
	}
}

func TestAccumulate_NilResolverIsNeutral(t *testing.T) {
	principal := decimal.NewFromInt(500)
	periods := monthsFrom(Period{Year: 2024, Month: time.January}, 3)

	steps, err := Accumulate(principal, periods, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range steps {
		if !s.Corrected.Equal(principal) {
			t.Errorf("period %s: expected %s, got %s", s.Period, principal, s.Corrected)
		}
	}
}

func TestAccumulate_CompoundsFactor(t *testing.T) {
	principal := decimal.NewFromInt(10000)
	periods := monthsFrom(Period{Year: 2024, Month: time.January}, 3)

	steps, err := Accumulate(principal, periods, constantRate("0.0025"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1.0025^3 is exact in decimal arithmetic.
	wantFactor := decimal.RequireFromString("1.007518765625")
	monthly := decimal.RequireFromString("1.0025")
	if cubed := monthly.Mul(monthly).Mul(monthly); !cubed.Equal(wantFactor) {
		t.Fatalf("fixture constant drifted: 1.0025^3 = %s, literal %s", cubed, wantFactor)
	}

	last := steps[len(steps)-1]
	if !last.Factor.Equal(wantFactor) {
		t.Errorf("expected factor %s, got %s", wantFactor, last.Factor)
	}

	if got := last.Corrected.Round(2); !got.Equal(decimal.RequireFromString("10075.19")) {
		t.Errorf("expected corrected 10075.19, got %s", got)
	}
}

func TestAccumulate_MonotonicUnderPositiveRates(t *testing.T) {
	principal := decimal.NewFromInt(1234)
	periods := monthsFrom(Period{Year: 2020, Month: time.June}, 24)

	steps, err := Accumulate(principal, periods, constantRate("0.004"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := principal
	for _, s := range steps {
		if s.Corrected.LessThan(prev) {
			t.Fatalf("period %s: corrected %s decreased below %s", s.Period, s.Corrected, prev)
		}
		prev = s.Corrected
	}
}

func TestAccumulate_ResolverFailurePropagates(t *testing.T) {
	periods := monthsFrom(Period{Year: 2024, Month: time.January}, 3)

	failing := func(p Period) (decimal.Decimal, error) {
		if p.Month == time.February {
			return decimal.Zero, fmt.Errorf("series unavailable")
		}
		return decimal.Zero, nil
	}

	_, err := Accumulate(decimal.NewFromInt(100), periods, failing)
	if !errors.Is(err, ErrRateResolution) {
		t.Fatalf("expected ErrRateResolution, got %v", err)
	}
}

func TestAccumulate_ZeroPeriods(t *testing.T) {
	steps, err := Accumulate(decimal.NewFromInt(100), nil, constantRate("0.01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 0 {
		t.Fatalf("expected no steps, got %d", len(steps))
	}
}
