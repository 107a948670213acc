package domain

import (
	"fmt"
	"time"
)

// Period is a calendar year-month. Correction indices are published
// monthly, so the engine steps month by month.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// Before reports whether p precedes o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// Equal reports whether p and o are the same year-month.
func (p Period) Equal(o Period) bool {
	return p.Year == o.Year && p.Month == o.Month
}

// Label formats the period as MM/YYYY, the convention used in
// Brazilian calculation statements.
func (p Period) Label() string {
	return fmt.Sprintf("%02d/%04d", p.Month, p.Year)
}

func (p Period) String() string {
	return p.Label()
}

// Sequence returns one period per calendar month from the month
// containing start through the month containing end, inclusive.
func Sequence(start, end time.Time) ([]Period, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start=%s end=%s", ErrInvalidRange,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	first := PeriodOf(start)
	last := PeriodOf(end)

	months := (last.Year-first.Year)*12 + int(last.Month-first.Month) + 1
	periods := make([]Period, 0, months)
	for p := first; !last.Before(p); p = p.Next() {
		periods = append(periods, p)
	}

	return periods, nil
}
