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

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Category entity.Category
	Note     string
	Date     time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	tipsCache   adapter.TipsCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, tipsCache adapter.TipsCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		tipsCache:   tipsCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.Amount, input.Category, input.Note, input.Date); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(input.UserID, input.Amount, input.Category, input.Note, input.Date)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	// A new expense changes the month snapshot, so cached advice is stale.
	if uc.tipsCache != nil {
		_ = uc.tipsCache.Invalidate(ctx, input.UserID.String(), entity.MonthOf(expense.Date))
	}

	return &CreateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}

// validateExpenseFields checks the shared invariants for create and update.
func validateExpenseFields(amount decimal.Decimal, category entity.Category, note string, date time.Time) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if !entity.IsValidCategory(category) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			fmt.Sprintf("category must be one of %v", entity.Categories),
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	if len(note) > MaxNoteLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}

	if date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	return nil
}
