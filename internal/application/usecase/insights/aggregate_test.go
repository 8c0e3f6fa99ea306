package insights

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

func june2024() Period {
	p, _ := MonthPeriod("2024-06")
	return p
}

func expenseOn(day string, category entity.Category, amount int64) *entity.Expense {
	date, _ := time.Parse("2006-01-02", day)
	return &entity.Expense{
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     entity.NormalizeDate(date),
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	result := Aggregate(nil, june2024())

	if !result.TotalSpent.IsZero() {
		t.Errorf("expected zero total, got %s", result.TotalSpent)
	}
	if len(result.ByCategory) != 0 {
		t.Errorf("expected empty category map, got %v", result.ByCategory)
	}
	if !result.AverageDailySpend.IsZero() {
		t.Errorf("expected zero average, got %s", result.AverageDailySpend)
	}
	if result.Count != 0 {
		t.Errorf("expected zero count, got %d", result.Count)
	}
}

func TestAggregateFiltersPeriodInclusive(t *testing.T) {
	expenses := []*entity.Expense{
		expenseOn("2024-05-31", entity.CategoryFood, 10), // day before
		expenseOn("2024-06-01", entity.CategoryFood, 20), // first day
		expenseOn("2024-06-15", entity.CategoryHome, 30),
		expenseOn("2024-06-30", entity.CategoryOther, 40), // last day
		expenseOn("2024-07-01", entity.CategoryFood, 50),  // day after
	}

	result := Aggregate(expenses, june2024())

	if want := decimal.NewFromInt(90); !result.TotalSpent.Equal(want) {
		t.Errorf("TotalSpent = %s, want %s", result.TotalSpent, want)
	}
	if result.Count != 3 {
		t.Errorf("Count = %d, want 3", result.Count)
	}
}

func TestAggregateByCategoryReconcilesToTotal(t *testing.T) {
	expenses := []*entity.Expense{
		expenseOn("2024-06-02", entity.CategoryFood, 125),
		expenseOn("2024-06-03", entity.CategoryFood, 75),
		expenseOn("2024-06-10", entity.CategoryTransport, 60),
		expenseOn("2024-06-21", entity.CategoryClothing, 40),
	}

	result := Aggregate(expenses, june2024())

	sum := decimal.Zero
	for _, amount := range result.ByCategory {
		sum = sum.Add(amount)
	}
	if !sum.Equal(result.TotalSpent) {
		t.Errorf("category sum %s does not reconcile to total %s", sum, result.TotalSpent)
	}
	if want := decimal.NewFromInt(200); !result.CategoryAmount(entity.CategoryFood).Equal(want) {
		t.Errorf("Food = %s, want %s", result.CategoryAmount(entity.CategoryFood), want)
	}
	// Absent categories read as zero, never panic.
	if !result.CategoryAmount(entity.CategoryHome).IsZero() {
		t.Errorf("expected zero for absent category")
	}
}

func TestAggregateAverageDailySpend(t *testing.T) {
	expenses := []*entity.Expense{
		expenseOn("2024-06-05", entity.CategoryFood, 300),
	}

	result := Aggregate(expenses, june2024())

	// June has 30 days.
	if want := decimal.NewFromInt(10); !result.AverageDailySpend.Equal(want) {
		t.Errorf("AverageDailySpend = %s, want %s", result.AverageDailySpend, want)
	}
}

func TestPeriodDaysGuardedToOne(t *testing.T) {
	day, _ := time.Parse("2006-01-02", "2024-06-01")
	p := Period{From: day, To: day}
	if p.Days() != 1 {
		t.Errorf("single-day period Days() = %d, want 1", p.Days())
	}

	inverted := Period{From: day.AddDate(0, 0, 5), To: day}
	if inverted.Days() != 1 {
		t.Errorf("inverted period Days() = %d, want 1", inverted.Days())
	}
}

func TestTopCategoryTieBreakUsesCanonicalOrder(t *testing.T) {
	expenses := []*entity.Expense{
		expenseOn("2024-06-10", entity.CategoryTransport, 100),
		expenseOn("2024-06-11", entity.CategoryFood, 100),
	}

	result := Aggregate(expenses, june2024())

	top, amount, ok := result.TopCategory()
	if !ok {
		t.Fatal("expected a top category")
	}
	if top != entity.CategoryFood {
		t.Errorf("tie-break picked %s, want Food (canonical order)", top)
	}
	if want := decimal.NewFromInt(100); !amount.Equal(want) {
		t.Errorf("top amount = %s, want %s", amount, want)
	}
}

func TestTopCategoryEmptyAggregation(t *testing.T) {
	result := Aggregate(nil, june2024())
	if _, _, ok := result.TopCategory(); ok {
		t.Error("expected no top category for an empty aggregation")
	}
}
