// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/domain/entity"
)

const (
	// MaxNoteLength is the maximum allowed length for expense notes.
	MaxNoteLength = 100
)

// ExpenseOutput is the use-case level representation of an expense returned
// to the entrypoint layer.
type ExpenseOutput struct {
	ID        uuid.UUID
	Amount    decimal.Decimal
	Category  entity.Category
	Note      string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:        e.ID,
		Amount:    e.Amount,
		Category:  e.Category,
		Note:      e.Note,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
