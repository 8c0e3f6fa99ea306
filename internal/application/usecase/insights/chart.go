package insights

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// DefaultTrendWindow is the number of trailing months covered by the monthly
// trend series.
const DefaultTrendWindow = 6

// CategoryPoint pairs the current and comparison amounts for one category.
type CategoryPoint struct {
	Category entity.Category
	Label    string // Locale display name
	Current  decimal.Decimal
	Previous decimal.Decimal
}

// TrendPoint is one month bucket in the trend series.
type TrendPoint struct {
	Month string // Month token, e.g. "2024-06"
	Label string // Short display label, e.g. "Jun 24"
	Total decimal.Decimal
}

// CategorySeries reshapes one or two aggregations into a per-category series
// for the category chart. Every category of the closed enumeration appears in
// canonical order, with zero values for categories without spend, so chart
// axes stay stable across periods. A nil previous aggregation yields zero
// comparison values.
func CategorySeries(current AggregationResult, previous *AggregationResult, locale entity.Locale) []CategoryPoint {
	points := make([]CategoryPoint, 0, len(entity.Categories))
	for _, c := range entity.Categories {
		point := CategoryPoint{
			Category: c,
			Label:    CategoryName(locale, c),
			Current:  current.CategoryAmount(c),
			Previous: decimal.Zero,
		}
		if previous != nil {
			point.Previous = previous.CategoryAmount(c)
		}
		points = append(points, point)
	}
	return points
}

// MonthlyTrend buckets expenses into a trailing window of calendar months
// ending at the month of the reference date. Months without expenses appear
// with a zero total so a sparse history still renders a continuous axis.
func MonthlyTrend(expenses []*entity.Expense, reference time.Time, window int, locale entity.Locale) []TrendPoint {
	if window < 1 {
		window = DefaultTrendWindow
	}

	ref := reference.UTC()
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(window - 1), 0)

	points := make([]TrendPoint, 0, window)
	index := make(map[string]int, window)
	for i := 0; i < window; i++ {
		monthStart := first.AddDate(0, i, 0)
		token := entity.MonthOf(monthStart)
		index[token] = i
		points = append(points, TrendPoint{
			Month: token,
			Label: monthLabel(monthStart, locale),
			Total: decimal.Zero,
		})
	}

	for _, exp := range expenses {
		if i, ok := index[entity.MonthOf(exp.Date)]; ok {
			points[i].Total = points[i].Total.Add(exp.Amount)
		}
	}

	return points
}

// monthLabel formats a short month label like "Jun 24".
func monthLabel(monthStart time.Time, locale entity.Locale) string {
	abbrev := monthAbbreviations[NormalizeLocale(locale)][int(monthStart.Month())-1]
	return fmt.Sprintf("%s %02d", abbrev, monthStart.Year()%100)
}
