// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the SmartExpense system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Locale       Locale // Preferred language for advice and category names
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string, locale Locale) *User {
	now := time.Now().UTC()

	if !IsValidLocale(locale) {
		locale = DefaultLocale
	}

	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Locale:       locale,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
