// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/application/usecase/insights"
	"github.com/smart-expense/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID  uuid.UUID
	Month   string // Optional "YYYY-MM"; empty means the current month
	Compare bool   // Include the previous month as a comparison series
	Locale  entity.Locale
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Month  string
	Points []insights.CategoryPoint
}

// GetCategoryBreakdownUseCase produces the per-category chart series with
// every category of the closed set present.
type GetCategoryBreakdownUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(expenseRepo adapter.ExpenseRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{expenseRepo: expenseRepo}
}

// Execute computes the category breakdown for one month.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	month := input.Month
	if month == "" {
		month = entity.MonthOf(time.Now())
	}
	locale := insights.NormalizeLocale(input.Locale)

	period, err := insights.MonthPeriod(month)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByUserAndDateRange(ctx, input.UserID, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	current := insights.Aggregate(expenses, period)

	var previous *insights.AggregationResult
	if input.Compare {
		previousPeriod, _ := insights.PreviousMonthPeriod(month)
		previousExpenses, err := uc.expenseRepo.FindByUserAndDateRange(ctx, input.UserID, previousPeriod.From, previousPeriod.To)
		if err != nil {
			return nil, fmt.Errorf("failed to load comparison expenses: %w", err)
		}
		agg := insights.Aggregate(previousExpenses, previousPeriod)
		previous = &agg
	}

	return &GetCategoryBreakdownOutput{
		Month:  month,
		Points: insights.CategorySeries(current, previous, locale),
	}, nil
}
