package insights

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

func TestCategorySeriesIncludesEveryCategory(t *testing.T) {
	current := aggregation(300, map[entity.Category]int64{
		entity.CategoryFood: 200,
		entity.CategoryHome: 100,
	})

	series := CategorySeries(current, nil, entity.LocaleEnglish)

	if len(series) != len(entity.Categories) {
		t.Fatalf("series length = %d, want %d", len(series), len(entity.Categories))
	}
	for i, point := range series {
		if point.Category != entity.Categories[i] {
			t.Errorf("series[%d] = %s, want %s (canonical order)", i, point.Category, entity.Categories[i])
		}
		if !point.Previous.IsZero() {
			t.Errorf("nil comparison period should yield zero, got %s", point.Previous)
		}
	}

	// Zero-spend categories still appear with value 0, never omitted.
	if !series[1].Current.IsZero() {
		t.Errorf("Transport should be zero, got %s", series[1].Current)
	}
	if want := decimal.NewFromInt(200); !series[0].Current.Equal(want) {
		t.Errorf("Food = %s, want %s", series[0].Current, want)
	}
}

func TestCategorySeriesWithComparisonPeriod(t *testing.T) {
	current := aggregation(100, map[entity.Category]int64{entity.CategoryFood: 100})
	previous := aggregation(80, map[entity.Category]int64{entity.CategoryTransport: 80})

	series := CategorySeries(current, &previous, entity.LocaleSpanish)

	if want := decimal.NewFromInt(80); !series[1].Previous.Equal(want) {
		t.Errorf("Transport previous = %s, want %s", series[1].Previous, want)
	}
	if series[1].Label != "Transporte" {
		t.Errorf("label = %q, want localized name", series[1].Label)
	}
}

func TestMonthlyTrendZeroFillsGaps(t *testing.T) {
	reference, _ := time.Parse("2006-01-02", "2024-06-15")
	expenses := []*entity.Expense{
		expenseOn("2024-01-10", entity.CategoryFood, 100),
		expenseOn("2024-04-05", entity.CategoryHome, 50),
		expenseOn("2024-04-20", entity.CategoryFood, 25),
		expenseOn("2024-06-01", entity.CategoryOther, 10),
		expenseOn("2023-12-31", entity.CategoryFood, 999), // outside the window
	}

	trend := MonthlyTrend(expenses, reference, 6, entity.LocaleEnglish)

	if len(trend) != 6 {
		t.Fatalf("trend length = %d, want 6", len(trend))
	}

	wantMonths := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}
	wantTotals := []int64{100, 0, 0, 75, 0, 10}
	for i := range trend {
		if trend[i].Month != wantMonths[i] {
			t.Errorf("trend[%d].Month = %s, want %s", i, trend[i].Month, wantMonths[i])
		}
		if want := decimal.NewFromInt(wantTotals[i]); !trend[i].Total.Equal(want) {
			t.Errorf("trend[%d].Total = %s, want %s", i, trend[i].Total, want)
		}
	}

	if trend[0].Label != "Jan 24" {
		t.Errorf("label = %q, want \"Jan 24\"", trend[0].Label)
	}
}

func TestMonthlyTrendDefaultsWindow(t *testing.T) {
	reference, _ := time.Parse("2006-01-02", "2024-06-15")

	trend := MonthlyTrend(nil, reference, 0, entity.LocaleEnglish)

	if len(trend) != DefaultTrendWindow {
		t.Errorf("trend length = %d, want %d", len(trend), DefaultTrendWindow)
	}
	for _, point := range trend {
		if !point.Total.IsZero() {
			t.Errorf("empty history should zero-fill, got %s for %s", point.Total, point.Month)
		}
	}
}
