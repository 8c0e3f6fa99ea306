// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// SavingsTipsRequest carries the month snapshot the advisor reasons about.
// Amounts are plain decimal strings so prompts stay provider-agnostic.
type SavingsTipsRequest struct {
	Month       string
	Locale      entity.Locale
	TotalSpent  string
	BudgetLimit string // empty when no budget is set
	ByCategory  map[entity.Category]string
}

// SavingsTipsResult is the advisor's output for one month.
type SavingsTipsResult struct {
	Alerts          []string
	Recommendations []string
}

// AdvisorService defines the interface for AI-assisted financial advice.
// Callers must be prepared for failure and fall back to the local rule
// engine.
type AdvisorService interface {
	// GenerateSavingsTips produces alerts and recommendations for a month
	// snapshot in the requested locale.
	GenerateSavingsTips(ctx context.Context, request *SavingsTipsRequest) (*SavingsTipsResult, error)

	// SuggestCategory proposes a category for a free-form expense note.
	SuggestCategory(ctx context.Context, note string, locale entity.Locale) (entity.Category, error)

	// IsAvailable checks if the advisor is available and properly configured.
	IsAvailable() bool
}
