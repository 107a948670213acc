package domain

import (
	"errors"
	"testing"
	"time"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "same month",
			start:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			wantLen:   1,
			wantFirst: "03/2024",
			wantLast:  "03/2024",
		},
		{
			name:      "six months",
			start:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			wantLen:   6,
			wantFirst: "01/2024",
			wantLast:  "06/2024",
		},
		{
			name:      "crosses year boundary",
			start:     time.Date(2023, time.November, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC),
			wantLen:   4,
			wantFirst: "11/2023",
			wantLast:  "02/2024",
		},
		{
			name:      "multi-year",
			start:     time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			end:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			wantLen:   60,
			wantFirst: "01/2020",
			wantLast:  "12/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods, err := Sequence(tt.start, tt.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(periods) != tt.wantLen {
				t.Fatalf("expected %d periods, got %d", tt.wantLen, len(periods))
			}

			if periods[0].Label() != tt.wantFirst {
				t.Errorf("expected first period %s, got %s", tt.wantFirst, periods[0].Label())
			}

			if periods[len(periods)-1].Label() != tt.wantLast {
				t.Errorf("expected last period %s, got %s", tt.wantLast, periods[len(periods)-1].Label())
			}

			for i := 1; i < len(periods); i++ {
				if !periods[i-1].Before(periods[i]) {
					t.Errorf("periods out of order at %d: %s before %s", i, periods[i-1], periods[i])
				}
			}
		})
	}
}

func TestSequence_InvalidRange(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := Sequence(start, end)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSequence_Restartable(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	first, err := Sequence(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Sequence(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("expected identical sequences, got %d and %d periods", len(first), len(second))
	}

	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("sequences differ at %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestPeriod_Next(t *testing.T) {
	p := Period{Year: 2024, Month: time.December}
	next := p.Next()

	if next.Year != 2025 || next.Month != time.January {
		t.Fatalf("expected 01/2025, got %s", next)
	}
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2024, time.July, 20, 13, 45, 0, 0, time.UTC))
	if p.Year != 2024 || p.Month != time.July {
		t.Fatalf("expected 07/2024, got %s", p)
	}
}
