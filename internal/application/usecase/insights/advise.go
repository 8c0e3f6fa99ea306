package insights

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// Rule thresholds, in percent. The budget-ratio alerts are mutually
// exclusive; the per-category recommendation checks are independent.
const (
	overBudgetThreshold     = 100
	nearLimitThreshold      = 85
	concentrationThreshold  = 50
	foodShareThreshold      = 30
	transportShareThreshold = 25
	clothingShareThreshold  = 20
	lowSpendingThreshold    = 50
)

// Advise runs the rule-based savings analysis over one month's aggregation.
// It is deterministic for identical inputs and locale, performs no external
// calls, and always returns a value: when no budget is configured (or its
// limit is non-positive) it short-circuits with empty alerts and a single
// "set a budget first" recommendation.
func Advise(agg AggregationResult, budget *entity.Budget, locale entity.Locale) entity.AdviceResult {
	locale = NormalizeLocale(locale)

	if budget == nil || !budget.Limit.IsPositive() {
		return entity.AdviceResult{
			Alerts:          []string{},
			Recommendations: []string{message(locale, msgSetBudgetFirst, MessageArgs{})},
		}
	}

	alerts := []string{}
	recommendations := []string{}

	ratioPct, _ := agg.TotalSpent.Div(budget.Limit).Mul(decimal.NewFromInt(100)).Float64()

	// Budget-ratio alert: at most one of over-budget / near-limit fires.
	if ratioPct > overBudgetThreshold {
		alerts = append(alerts, message(locale, msgOverBudget, MessageArgs{
			Percent: int(math.Round(ratioPct - overBudgetThreshold)),
		}))
	} else if ratioPct > nearLimitThreshold {
		alerts = append(alerts, message(locale, msgNearLimit, MessageArgs{
			Percent: nearLimitThreshold,
		}))
	}

	// Concentration alert: skipped entirely on a zero total to avoid a zero
	// denominator, never as an error.
	if top, topAmount, ok := agg.TopCategory(); ok {
		share, _ := topAmount.Div(agg.TotalSpent).Mul(decimal.NewFromInt(100)).Float64()
		if share > concentrationThreshold {
			alerts = append(alerts, message(locale, msgConcentration, MessageArgs{
				Category: CategoryName(locale, top),
				Percent:  int(math.Round(share)),
			}))
		}
	}

	// Per-category tips, visited in descending order of spend.
	for _, c := range categoriesByDescendingSpend(agg) {
		share, _ := agg.CategoryAmount(c).Div(agg.TotalSpent).Mul(decimal.NewFromInt(100)).Float64()
		percent := int(math.Round(share))

		switch {
		case c == entity.CategoryFood && share > foodShareThreshold:
			recommendations = append(recommendations, message(locale, msgFoodTip, MessageArgs{Percent: percent}))
		case c == entity.CategoryTransport && share > transportShareThreshold:
			recommendations = append(recommendations, message(locale, msgTransportTip, MessageArgs{Percent: percent}))
		case c == entity.CategoryClothing && share > clothingShareThreshold:
			recommendations = append(recommendations, message(locale, msgClothingTip, MessageArgs{Percent: percent}))
		}
	}

	if ratioPct < lowSpendingThreshold {
		// Under this branch's guard the set-aside amount is non-negative.
		savings := budget.Limit.Div(decimal.NewFromInt(2)).Sub(agg.TotalSpent)
		recommendations = append(recommendations, message(locale, msgSaveHalf, MessageArgs{
			Amount: savings.Round(0).String(),
		}))
	} else {
		recommendations = append(recommendations, message(locale, msgSubscriptions, MessageArgs{}))
	}

	// Analysis ran but found nothing to say: return a single congratulatory
	// message rather than an empty payload. Distinct from the no-budget
	// short-circuit above, which deliberately returns empty alerts.
	if len(alerts) == 0 && len(recommendations) == 0 {
		recommendations = append(recommendations, message(locale, msgGoodJob, MessageArgs{}))
	}

	if len(recommendations) > entity.MaxRecommendations {
		recommendations = recommendations[:entity.MaxRecommendations]
	}

	return entity.AdviceResult{
		Alerts:          alerts,
		Recommendations: recommendations,
	}
}

// categoriesByDescendingSpend returns the categories with recorded spend,
// largest first. Equal amounts keep the canonical category order.
func categoriesByDescendingSpend(agg AggregationResult) []entity.Category {
	present := make([]entity.Category, 0, len(agg.ByCategory))
	for _, c := range entity.Categories {
		if _, ok := agg.ByCategory[c]; ok {
			present = append(present, c)
		}
	}
	sort.SliceStable(present, func(i, j int) bool {
		return agg.ByCategory[present[i]].GreaterThan(agg.ByCategory[present[j]])
	})
	return present
}
