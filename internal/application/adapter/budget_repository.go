// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert creates the budget for (user, month) or replaces its limit if
	// one already exists. Returns the stored budget.
	Upsert(ctx context.Context, budget *entity.Budget) (*entity.Budget, error)

	// FindByUserAndMonth retrieves the budget for a given user and month
	// token. Returns nil without error when no budget is set.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.Budget, error)
}
