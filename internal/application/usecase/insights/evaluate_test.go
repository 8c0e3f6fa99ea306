package insights

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

func budgetWithLimit(limit int64) *entity.Budget {
	return &entity.Budget{Month: "2024-06", Limit: decimal.NewFromInt(limit)}
}

func aggregationWithTotal(total int64) AggregationResult {
	return AggregationResult{
		TotalSpent: decimal.NewFromInt(total),
		ByCategory: map[entity.Category]decimal.Decimal{},
	}
}

func TestEvaluateNoBudget(t *testing.T) {
	eval := Evaluate(aggregationWithTotal(500), nil)

	if eval.Remaining != nil {
		t.Errorf("expected nil remaining without a budget, got %s", eval.Remaining)
	}
	if eval.Ratio != 0 {
		t.Errorf("expected zero ratio without a budget, got %f", eval.Ratio)
	}
}

func TestEvaluateRemainingExact(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		limit         int64
		wantRemaining int64
	}{
		{"under budget", 900, 1000, 100},
		{"zero spend", 0, 1000, 1000},
		{"over budget is negative", 1100, 1000, -100},
		{"exact limit", 1000, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(aggregationWithTotal(tt.total), budgetWithLimit(tt.limit))

			if eval.Remaining == nil {
				t.Fatal("expected remaining to be set")
			}
			if want := decimal.NewFromInt(tt.wantRemaining); !eval.Remaining.Equal(want) {
				t.Errorf("Remaining = %s, want %s", eval.Remaining, want)
			}
		})
	}
}

func TestEvaluateRatio(t *testing.T) {
	eval := Evaluate(aggregationWithTotal(900), budgetWithLimit(1000))
	if eval.Ratio != 0.9 {
		t.Errorf("Ratio = %f, want 0.9", eval.Ratio)
	}

	// A non-positive limit must not divide by zero.
	zeroLimit := &entity.Budget{Month: "2024-06", Limit: decimal.Zero}
	eval = Evaluate(aggregationWithTotal(900), zeroLimit)
	if eval.Ratio != 0 {
		t.Errorf("Ratio with zero limit = %f, want 0", eval.Ratio)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"increase", 150, 100, 50},
		{"decrease", 50, 100, -50},
		{"unchanged", 100, 100, 0},
		{"from zero to something", 42, 0, 100},
		{"from zero to nothing", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentChange(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))
			if got != tt.want {
				t.Errorf("PercentChange(%d, %d) = %f, want %f", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}
