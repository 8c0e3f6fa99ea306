// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/domain/entity"
	domainerror "github.com/smart-expense/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Message string
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	tipsCache   adapter.TipsCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, tipsCache adapter.TipsCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		tipsCache:   tipsCache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"expense does not belong to user",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	if uc.tipsCache != nil {
		_ = uc.tipsCache.Invalidate(ctx, input.UserID.String(), entity.MonthOf(expense.Date))
	}

	return &DeleteExpenseOutput{Message: "Expense deleted successfully"}, nil
}
