// Package expense contains expense-related use cases.
package expense

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

const (
	// DefaultPageLimit is the page size when the client does not specify one.
	DefaultPageLimit = 20
	// MaxPageLimit caps the page size.
	MaxPageLimit = 100
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID   uuid.UUID
	Month    string // Optional "YYYY-MM" filter
	Category string // Optional category filter
	Page     int
	Limit    int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses   []*ExpenseOutput
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	filter := adapter.ExpenseFilter{UserID: input.UserID}

	if input.Month != "" {
		period, err := insights.MonthPeriod(input.Month)
		if err != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDate,
				"month must be of the form YYYY-MM",
				domainerror.ErrInvalidExpenseDate,
			)
		}
		filter.StartDate = timePtr(period.From)
		filter.EndDate = timePtr(period.To)
	}

	if input.Category != "" {
		category := entity.Category(input.Category)
		if !entity.IsValidCategory(category) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseCategory,
				fmt.Sprintf("category must be one of %v", entity.Categories),
				domainerror.ErrInvalidExpenseCategory,
			)
		}
		filter.Category = &category
	}

	pagination := adapter.ExpensePagination{Page: input.Page, Limit: input.Limit}
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Limit < 1 {
		pagination.Limit = DefaultPageLimit
	}
	if pagination.Limit > MaxPageLimit {
		pagination.Limit = MaxPageLimit
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	outputs := make([]*ExpenseOutput, 0, len(result.Expenses))
	for _, e := range result.Expenses {
		outputs = append(outputs, toExpenseOutput(e))
	}

	return &ListExpensesOutput{
		Expenses:   outputs,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
