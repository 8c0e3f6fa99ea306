package insights

import (
	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// Evaluation combines an aggregation with the month's budget.
//
// Remaining is nil when no budget is configured for the period; that state
// must propagate as "budget not set" in every consumer and is distinct from a
// remaining of zero. A negative Remaining signifies overspend and is a valid
// value, not an error.
type Evaluation struct {
	Remaining *decimal.Decimal
	Ratio     float64 // TotalSpent / Limit; 0 when no budget or non-positive limit
}

// Evaluate computes the remaining budget and spend ratio for the period.
// The budget limit is invariant-guaranteed positive at creation, but the
// ratio computation still guards against a zero denominator.
func Evaluate(agg AggregationResult, budget *entity.Budget) Evaluation {
	if budget == nil {
		return Evaluation{Remaining: nil, Ratio: 0}
	}

	remaining := budget.Limit.Sub(agg.TotalSpent)

	ratio := 0.0
	if budget.Limit.IsPositive() {
		ratio, _ = agg.TotalSpent.Div(budget.Limit).Float64()
	}

	return Evaluation{
		Remaining: &remaining,
		Ratio:     ratio,
	}
}

// PercentChange computes the period-over-period change in percent. When the
// previous value is zero the change is defined as 100 if the current value is
// positive and 0 otherwise, so the computation stays total while still
// signaling "went from nothing to something".
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	change, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return change
}
