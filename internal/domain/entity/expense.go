// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category represents an expense category. The set is closed: every expense
// belongs to exactly one of the five categories below.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryClothing  Category = "Clothing"
	CategoryHome      Category = "Home"
	CategoryOther     Category = "Other"
)

// Categories lists all expense categories in canonical order. Code that needs
// a deterministic iteration order (chart series, tie-breaks) iterates this
// slice instead of ranging over a map.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryClothing,
	CategoryHome,
	CategoryOther,
}

// IsValidCategory reports whether the given category is one of the closed set.
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryClothing, CategoryHome, CategoryOther:
		return true
	}
	return false
}

// Expense represents a single spending event in the SmartExpense system.
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    decimal.Decimal // Always positive; validated at the use-case boundary
	Category  Category
	Note      string
	Date      time.Time // Normalized to midnight UTC, day granularity
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity. The date is normalized to midnight
// UTC so timezone shifts never move an expense into an adjacent day.
func NewExpense(userID uuid.UUID, amount decimal.Decimal, category Category, note string, date time.Time) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Category:  category,
		Note:      note,
		Date:      NormalizeDate(date),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeDate truncates a timestamp to midnight UTC of its calendar day.
func NormalizeDate(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
