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
	domainerror "github.com/smart-expense/backend/internal/domain/error"
)

// MaxTrendWindow caps the trend window in months.
const MaxTrendWindow = 24

// GetTrendInput represents the input for the monthly spending trend.
type GetTrendInput struct {
	UserID uuid.UUID
	Months int // Optional window; 0 means the default
	Locale entity.Locale
}

// GetTrendOutput represents the output of the monthly spending trend.
type GetTrendOutput struct {
	Points []insights.TrendPoint
}

// GetTrendUseCase produces the zero-filled monthly spending series.
type GetTrendUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetTrendUseCase creates a new GetTrendUseCase instance.
func NewGetTrendUseCase(expenseRepo adapter.ExpenseRepository) *GetTrendUseCase {
	return &GetTrendUseCase{expenseRepo: expenseRepo}
}

// Execute computes the trend for the trailing window ending this month.
func (uc *GetTrendUseCase) Execute(ctx context.Context, input GetTrendInput) (*GetTrendOutput, error) {
	window := input.Months
	if window == 0 {
		window = insights.DefaultTrendWindow
	}
	if window < 1 || window > MaxTrendWindow {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTrendWindow,
			fmt.Sprintf("months must be between 1 and %d", MaxTrendWindow),
			domainerror.ErrInvalidTrendWindow,
		)
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(window - 1), 0)
	end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)

	expenses, err := uc.expenseRepo.FindByUserAndDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	points := insights.MonthlyTrend(expenses, now, window, insights.NormalizeLocale(input.Locale))

	return &GetTrendOutput{Points: points}, nil
}
