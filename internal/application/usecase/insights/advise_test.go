package insights

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

func aggregation(total int64, byCategory map[entity.Category]int64) AggregationResult {
	categories := make(map[entity.Category]decimal.Decimal, len(byCategory))
	count := 0
	for c, amount := range byCategory {
		categories[c] = decimal.NewFromInt(amount)
		count++
	}
	return AggregationResult{
		TotalSpent: decimal.NewFromInt(total),
		ByCategory: categories,
		Count:      count,
	}
}

func TestAdviseNoBudgetShortCircuits(t *testing.T) {
	agg := aggregation(700, map[entity.Category]int64{entity.CategoryFood: 700})

	for _, budget := range []*entity.Budget{nil, {Month: "2024-06", Limit: decimal.Zero}} {
		result := Advise(agg, budget, entity.LocaleEnglish)

		if len(result.Alerts) != 0 {
			t.Errorf("expected no alerts without a budget, got %v", result.Alerts)
		}
		if len(result.Recommendations) != 1 {
			t.Fatalf("expected exactly one recommendation, got %v", result.Recommendations)
		}
		if result.Recommendations[0] != message(entity.LocaleEnglish, msgSetBudgetFirst, MessageArgs{}) {
			t.Errorf("unexpected placeholder message: %q", result.Recommendations[0])
		}
	}
}

func TestAdviseNearLimitWarning(t *testing.T) {
	// 900 of 1000 spent: 90% triggers the near-limit warning, not the
	// over-budget alert. Shares of exactly 50% keep the concentration rule
	// quiet.
	agg := aggregation(900, map[entity.Category]int64{
		entity.CategoryFood:      450,
		entity.CategoryTransport: 450,
	})

	result := Advise(agg, budgetWithLimit(1000), entity.LocaleEnglish)

	if len(result.Alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %v", result.Alerts)
	}
	if want := message(entity.LocaleEnglish, msgNearLimit, MessageArgs{Percent: 85}); result.Alerts[0] != want {
		t.Errorf("alert = %q, want %q", result.Alerts[0], want)
	}
}

func TestAdviseOverBudgetAlert(t *testing.T) {
	agg := aggregation(1100, map[entity.Category]int64{
		entity.CategoryHome:  550,
		entity.CategoryOther: 550,
	})

	result := Advise(agg, budgetWithLimit(1000), entity.LocaleEnglish)

	if len(result.Alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %v", result.Alerts)
	}
	if want := message(entity.LocaleEnglish, msgOverBudget, MessageArgs{Percent: 10}); result.Alerts[0] != want {
		t.Errorf("alert = %q, want %q", result.Alerts[0], want)
	}
}

func TestAdviseConcentrationAlert(t *testing.T) {
	// 70% spend ratio triggers neither budget alert, but all spend in one
	// category trips the concentration rule.
	agg := aggregation(700, map[entity.Category]int64{entity.CategoryFood: 700})

	result := Advise(agg, budgetWithLimit(1000), entity.LocaleEnglish)

	if len(result.Alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %v", result.Alerts)
	}
	want := message(entity.LocaleEnglish, msgConcentration, MessageArgs{Category: "Food", Percent: 100})
	if result.Alerts[0] != want {
		t.Errorf("alert = %q, want %q", result.Alerts[0], want)
	}
}

func TestAdviseEmptyMonthRecommendsSaving(t *testing.T) {
	agg := aggregation(0, nil)

	result := Advise(agg, budgetWithLimit(1000), entity.LocaleEnglish)

	if len(result.Alerts) != 0 {
		t.Errorf("expected no alerts for an empty month, got %v", result.Alerts)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected exactly one recommendation, got %v", result.Recommendations)
	}
	// Ratio 0 takes the low-spending branch: set aside limit/2 - 0 = 500.
	if want := message(entity.LocaleEnglish, msgSaveHalf, MessageArgs{Amount: "500"}); result.Recommendations[0] != want {
		t.Errorf("recommendation = %q, want %q", result.Recommendations[0], want)
	}
}

func TestAdviseRecommendationCap(t *testing.T) {
	// Food at 57% and Transport at 43% both trigger tips; the generic
	// subscriptions suggestion is dropped by the cap of two.
	agg := aggregation(700, map[entity.Category]int64{
		entity.CategoryFood:      400,
		entity.CategoryTransport: 300,
	})

	result := Advise(agg, budgetWithLimit(1000), entity.LocaleEnglish)

	want := []string{
		message(entity.LocaleEnglish, msgFoodTip, MessageArgs{Percent: 57}),
		message(entity.LocaleEnglish, msgTransportTip, MessageArgs{Percent: 43}),
	}
	if !reflect.DeepEqual(result.Recommendations, want) {
		t.Errorf("Recommendations = %v, want %v", result.Recommendations, want)
	}
}

func TestAdviseIndependentCategoryTipsOrderedBySpend(t *testing.T) {
	// Clothing outspends Food here, so its tip is generated first.
	agg := aggregation(1000, map[entity.Category]int64{
		entity.CategoryClothing: 600,
		entity.CategoryFood:     400,
	})

	result := Advise(agg, budgetWithLimit(2000), entity.LocaleEnglish)

	want := []string{
		message(entity.LocaleEnglish, msgClothingTip, MessageArgs{Percent: 60}),
		message(entity.LocaleEnglish, msgFoodTip, MessageArgs{Percent: 40}),
	}
	if !reflect.DeepEqual(result.Recommendations, want) {
		t.Errorf("Recommendations = %v, want %v", result.Recommendations, want)
	}
}

func TestAdviseSubscriptionsBranch(t *testing.T) {
	// 60% ratio with no category above its threshold: only the generic
	// subscriptions suggestion fires.
	agg := aggregation(600, map[entity.Category]int64{
		entity.CategoryFood:      150,
		entity.CategoryTransport: 120,
		entity.CategoryClothing:  100,
		entity.CategoryHome:      130,
		entity.CategoryOther:     100,
	})

	result := Advise(agg, budgetWithLimit(1000), entity.LocaleEnglish)

	if len(result.Alerts) != 0 {
		t.Errorf("expected no alerts, got %v", result.Alerts)
	}
	want := []string{message(entity.LocaleEnglish, msgSubscriptions, MessageArgs{})}
	if !reflect.DeepEqual(result.Recommendations, want) {
		t.Errorf("Recommendations = %v, want %v", result.Recommendations, want)
	}
}

func TestAdviseIdempotent(t *testing.T) {
	agg := aggregation(900, map[entity.Category]int64{
		entity.CategoryFood: 500,
		entity.CategoryHome: 400,
	})
	budget := budgetWithLimit(1000)

	first := Advise(agg, budget, entity.LocaleSpanish)
	second := Advise(agg, budget, entity.LocaleSpanish)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("advise is not deterministic: %v vs %v", first, second)
	}
}

func TestAdviseLocalizedOutput(t *testing.T) {
	agg := aggregation(700, map[entity.Category]int64{entity.CategoryFood: 700})

	result := Advise(agg, budgetWithLimit(1000), entity.LocaleSpanish)

	if len(result.Alerts) != 1 {
		t.Fatalf("expected one alert, got %v", result.Alerts)
	}
	// Category display names are translated, never the raw enum token.
	if !strings.Contains(result.Alerts[0], "Comida") {
		t.Errorf("expected Spanish category name in %q", result.Alerts[0])
	}
	if strings.Contains(result.Alerts[0], "{percent}") || strings.Contains(result.Alerts[0], "{category}") {
		t.Errorf("unsubstituted placeholder in %q", result.Alerts[0])
	}

	// Unsupported locales fall back to the default instead of failing.
	fallback := Advise(agg, budgetWithLimit(1000), entity.Locale("pt"))
	if !reflect.DeepEqual(fallback, Advise(agg, budgetWithLimit(1000), entity.DefaultLocale)) {
		t.Error("unsupported locale did not fall back to the default")
	}
}
