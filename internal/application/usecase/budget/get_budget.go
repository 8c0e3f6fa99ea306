// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-expense/backend/internal/application/adapter"
	domainerror "github.com/smart-expense/backend/internal/domain/error"
)

// GetBudgetInput represents the input for retrieving a monthly budget.
type GetBudgetInput struct {
	UserID uuid.UUID
	Month  string
}

// GetBudgetOutput represents the output of retrieving a monthly budget.
type GetBudgetOutput struct {
	Budget *BudgetOutput
}

// GetBudgetUseCase handles budget retrieval logic.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget retrieval. Unlike dashboard flows, where a
// missing budget is a modeled absence, the direct lookup reports not-found.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	if err := validateMonth(input.Month); err != nil {
		return nil, err
	}

	budget, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if budget == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"no budget set for month",
			domainerror.ErrBudgetNotFound,
		)
	}

	return &GetBudgetOutput{Budget: toBudgetOutput(budget)}, nil
}
