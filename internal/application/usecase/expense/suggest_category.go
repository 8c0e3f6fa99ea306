// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"log/slog"
	"strings"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/domain/entity"
	domainerror "github.com/smart-expense/backend/internal/domain/error"
)

// MinNoteLengthForSuggestion is the shortest note worth sending to the
// advisor. Shorter notes carry no signal.
const MinNoteLengthForSuggestion = 3

// SuggestCategoryInput represents the input for AI category suggestion.
type SuggestCategoryInput struct {
	Note   string
	Locale entity.Locale
}

// SuggestCategoryOutput represents the output of AI category suggestion.
type SuggestCategoryOutput struct {
	Category  entity.Category
	Suggested bool // false when the note was too short to ask
}

// SuggestCategoryUseCase asks the advisor for a category matching a note.
type SuggestCategoryUseCase struct {
	advisor adapter.AdvisorService
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(advisor adapter.AdvisorService) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{advisor: advisor}
}

// Execute performs the category suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	note := strings.TrimSpace(input.Note)
	if len(note) < MinNoteLengthForSuggestion {
		return &SuggestCategoryOutput{Category: entity.CategoryOther, Suggested: false}, nil
	}

	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion unavailable",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	category, err := uc.advisor.SuggestCategory(ctx, note, input.Locale)
	if err != nil {
		slog.Warn("Category suggestion failed", "error", err)
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion unavailable",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	if !entity.IsValidCategory(category) {
		category = entity.CategoryOther
	}

	return &SuggestCategoryOutput{Category: category, Suggested: true}, nil
}
