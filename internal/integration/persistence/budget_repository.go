// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/domain/entity"
	"github.com/smart-expense/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget for (user, month) or replaces its limit if one
// already exists, keyed on the unique (user_id, month) index.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) (*entity.Budget, error) {
	budgetModel := model.BudgetFromEntity(budget)
	budgetModel.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
	}).Create(budgetModel)
	if result.Error != nil {
		return nil, result.Error
	}

	// Re-read so the caller sees the stored row (original ID on replace).
	return r.findModel(ctx, budget.UserID, budget.Month)
}

// FindByUserAndMonth retrieves the budget for a given user and month token.
// Returns nil without error when no budget is set.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.Budget, error) {
	budget, err := r.findModel(ctx, userID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return budget, nil
}

func (r *budgetRepository) findModel(ctx context.Context, userID uuid.UUID, month string) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		First(&budgetModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}
