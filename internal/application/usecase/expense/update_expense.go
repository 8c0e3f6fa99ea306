// Package expense contains expense-related use cases.
package expense

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

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Category entity.Category
	Note     string
	Date     time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	tipsCache   adapter.TipsCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, tipsCache adapter.TipsCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		tipsCache:   tipsCache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateExpenseFields(input.Amount, input.Category, input.Note, input.Date); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	// Ownership check before anything else leaks existence details.
	if expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"expense does not belong to user",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	previousMonth := entity.MonthOf(expense.Date)

	expense.Amount = input.Amount
	expense.Category = input.Category
	expense.Note = input.Note
	expense.Date = entity.NormalizeDate(input.Date)
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	// The edit may move the expense across months; both snapshots are stale.
	if uc.tipsCache != nil {
		_ = uc.tipsCache.Invalidate(ctx, input.UserID.String(), previousMonth)
		if month := entity.MonthOf(expense.Date); month != previousMonth {
			_ = uc.tipsCache.Invalidate(ctx, input.UserID.String(), month)
		}
	}

	return &UpdateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}
