package insights

import (
	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// AggregationResult holds the figures derived from one period's expenses.
// It is computed fresh on every query and never cached across mutations.
type AggregationResult struct {
	TotalSpent        decimal.Decimal
	ByCategory        map[entity.Category]decimal.Decimal // Categories with no spend are absent
	AverageDailySpend decimal.Decimal
	Count             int
}

// Aggregate filters the given expenses to the inclusive period and sums them.
// An empty input yields an all-zero result, not an error. The function is
// pure: it retains no state and is safe to call repeatedly with fresher
// snapshots of the same data.
func Aggregate(expenses []*entity.Expense, period Period) AggregationResult {
	result := AggregationResult{
		TotalSpent: decimal.Zero,
		ByCategory: make(map[entity.Category]decimal.Decimal),
	}

	for _, exp := range expenses {
		if !period.Contains(exp.Date) {
			continue
		}
		result.TotalSpent = result.TotalSpent.Add(exp.Amount)
		result.ByCategory[exp.Category] = result.ByCategory[exp.Category].Add(exp.Amount)
		result.Count++
	}

	days := decimal.NewFromInt(int64(period.Days()))
	result.AverageDailySpend = result.TotalSpent.Div(days)

	return result
}

// CategoryAmount returns the summed amount for a category, treating absent
// categories as zero.
func (r AggregationResult) CategoryAmount(c entity.Category) decimal.Decimal {
	if amount, ok := r.ByCategory[c]; ok {
		return amount
	}
	return decimal.Zero
}

// TopCategory returns the category with the largest summed amount and its
// amount. Ties are broken by the canonical category order (first category in
// entity.Categories wins). The second return value is false when no expenses
// were aggregated.
func (r AggregationResult) TopCategory() (entity.Category, decimal.Decimal, bool) {
	if r.Count == 0 || r.TotalSpent.IsZero() {
		return "", decimal.Zero, false
	}

	var top entity.Category
	topAmount := decimal.Zero
	found := false
	for _, c := range entity.Categories {
		amount, ok := r.ByCategory[c]
		if !ok {
			continue
		}
		// Strictly-greater comparison keeps the earlier category on ties.
		if !found || amount.GreaterThan(topAmount) {
			top = c
			topAmount = amount
			found = true
		}
	}
	return top, topAmount, found
}
