// Package insights contains the budget-analysis core: monthly aggregation,
// budget evaluation, the rule-based savings-advice engine and the chart data
// shapers. Everything in this package is a pure function of its inputs.
package insights

import (
	"time"

	domainerror "github.com/smart-expense/backend/internal/domain/error"
)

// Period is an inclusive calendar-day range. Both bounds are normalized to
// midnight UTC.
type Period struct {
	From time.Time
	To   time.Time
}

// MonthPeriod returns the period covering a full calendar month given its
// token, e.g. "2024-06".
func MonthPeriod(month string) (Period, error) {
	start, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		return Period{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthFormat,
			"month must be of the form YYYY-MM",
			domainerror.ErrInvalidMonthFormat,
		)
	}
	return Period{
		From: start,
		To:   start.AddDate(0, 1, -1),
	}, nil
}

// PreviousMonthPeriod returns the period for the month immediately before the
// given month token.
func PreviousMonthPeriod(month string) (Period, error) {
	p, err := MonthPeriod(month)
	if err != nil {
		return Period{}, err
	}
	prev := p.From.AddDate(0, -1, 0)
	return Period{
		From: prev,
		To:   p.From.AddDate(0, 0, -1),
	}, nil
}

// Contains reports whether the given date falls inside the period. The date
// is normalized to day granularity before the comparison.
func (p Period) Contains(t time.Time) bool {
	day := time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(p.From) && !day.After(p.To)
}

// Days returns the inclusive day count of the period, guarded to be at least
// 1 so average computations never divide by zero.
func (p Period) Days() int {
	days := int(p.To.Sub(p.From).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
