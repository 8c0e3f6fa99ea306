// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for a user. At most one budget
// exists per (user, month) pair; setting the budget for a month that already
// has one replaces the limit (upsert semantics).
//
// Absence of a Budget for a month is a valid, meaningful state ("no budget
// set") and is modeled everywhere as a nil *Budget, never as a zero limit.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Month     string          // Calendar-month token, e.g. "2024-06"
	Limit     decimal.Decimal // Always positive; validated at the use-case boundary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthFormat is the layout for budget month tokens.
const MonthFormat = "2006-01"

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, month string, limit decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Month:     month,
		Limit:     limit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MonthOf returns the month token for the given time, e.g. "2024-06".
func MonthOf(t time.Time) string {
	return t.UTC().Format(MonthFormat)
}
