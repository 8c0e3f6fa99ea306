// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  *entity.Category
}

// ExpensePagination defines pagination options.
type ExpensePagination struct {
	Page  int
	Limit int
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*entity.Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses based on filter criteria with pagination,
	// ordered by date descending.
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination ExpensePagination) (*ExpenseListResult, error)

	// FindByUserAndDateRange retrieves all expenses for a user within the
	// inclusive date range, ordered by date ascending. Used by aggregation
	// and export, which need the full set rather than a page.
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Expense, error)

	// FindAllByUser retrieves every expense for a user ordered by date
	// ascending. Used by the unfiltered export.
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
