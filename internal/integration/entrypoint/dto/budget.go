// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/smart-expense/backend/internal/application/usecase/budget"
)

// UpsertBudgetRequest represents the request body for setting a monthly budget.
type UpsertBudgetRequest struct {
	Limit float64 `json:"limit" binding:"required"`
}

// BudgetResponse represents a monthly budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Month     string    `json:"month"`
	Limit     string    `json:"limit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBudgetResponse converts a BudgetOutput to a BudgetResponse DTO.
func ToBudgetResponse(b *budget.BudgetOutput) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Month:     b.Month,
		Limit:     b.Limit.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
