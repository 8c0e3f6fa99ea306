// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/domain/entity"
	domainerror "github.com/smart-expense/backend/internal/domain/error"
)

// UpsertBudgetInput represents the input for setting a monthly budget.
type UpsertBudgetInput struct {
	UserID uuid.UUID
	Month  string // "YYYY-MM"
	Limit  decimal.Decimal
}

// UpsertBudgetOutput represents the output of setting a monthly budget.
type UpsertBudgetOutput struct {
	Budget *BudgetOutput
}

// BudgetOutput is the use-case level representation of a budget.
type BudgetOutput struct {
	ID        uuid.UUID
	Month     string
	Limit     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpsertBudgetUseCase handles budget creation and replacement. Setting a
// budget for a month that already has one replaces its limit.
type UpsertBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	tipsCache  adapter.TipsCache
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository, tipsCache adapter.TipsCache) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo: budgetRepo,
		tipsCache:  tipsCache,
	}
}

// Execute performs the budget upsert.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	if err := validateMonth(input.Month); err != nil {
		return nil, err
	}

	if !input.Limit.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Month, input.Limit)

	stored, err := uc.budgetRepo.Upsert(ctx, budget)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	// A changed limit shifts the advice thresholds for the month.
	if uc.tipsCache != nil {
		_ = uc.tipsCache.Invalidate(ctx, input.UserID.String(), input.Month)
	}

	return &UpsertBudgetOutput{Budget: toBudgetOutput(stored)}, nil
}

func toBudgetOutput(b *entity.Budget) *BudgetOutput {
	return &BudgetOutput{
		ID:        b.ID,
		Month:     b.Month,
		Limit:     b.Limit,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// validateMonth checks the "YYYY-MM" month token.
func validateMonth(month string) error {
	if _, err := time.Parse(entity.MonthFormat, month); err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			fmt.Sprintf("month must be of the form %s", entity.MonthFormat),
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	return nil
}
