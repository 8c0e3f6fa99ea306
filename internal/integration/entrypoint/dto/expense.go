// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/smart-expense/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Note     string  `json:"note,omitempty" binding:"omitempty,max=100"`
	Date     string  `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for expense update. All
// fields are required: updates replace the expense contents wholesale.
type UpdateExpenseRequest struct {
	Amount   float64 `json:"amount" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Note     string  `json:"note,omitempty" binding:"omitempty,max=100"`
	Date     string  `json:"date" binding:"required"`
}

// SuggestCategoryRequest represents the request body for AI category suggestion.
type SuggestCategoryRequest struct {
	Note string `json:"note" binding:"required"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Note      string    `json:"note"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExpensePaginationResponse represents pagination information in API responses.
type ExpensePaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse         `json:"expenses"`
	Pagination ExpensePaginationResponse `json:"pagination"`
}

// SuggestCategoryResponse represents the response for AI category suggestion.
type SuggestCategoryResponse struct {
	Category  string `json:"category"`
	Suggested bool   `json:"suggested"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID.String(),
		Amount:    e.Amount.String(),
		Category:  string(e.Category),
		Note:      e.Note,
		Date:      e.Date.Format("2006-01-02"),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to ExpenseListResponse.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}

	return ExpenseListResponse{
		Expenses: expenses,
		Pagination: ExpensePaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	}
}
