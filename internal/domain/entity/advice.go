// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Locale identifies a supported output language for advice messages.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

// DefaultLocale is used when a user has no locale preference stored.
const DefaultLocale = LocaleEnglish

// IsValidLocale reports whether the given locale is supported.
func IsValidLocale(l Locale) bool {
	return l == LocaleEnglish || l == LocaleSpanish
}

// AdviceSource identifies which engine produced an advice result.
type AdviceSource string

const (
	AdviceSourceLocal AdviceSource = "local"
	AdviceSourceAI    AdviceSource = "ai"
)

// AdviceResult holds the savings analysis for a month: warning alerts and
// actionable recommendations, both already rendered in the user's locale.
// Alerts appear in rule-evaluation order (budget ratio before category
// concentration); recommendations are capped at MaxRecommendations.
type AdviceResult struct {
	Alerts          []string
	Recommendations []string
}

// MaxRecommendations caps the recommendation list to keep advice focused.
const MaxRecommendations = 2

// AdviceSnapshot records one advice generation for a user and month so the
// dashboard can show what was suggested and which engine produced it.
type AdviceSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Month           string
	Source          AdviceSource
	Alerts          []string
	Recommendations []string
	CreatedAt       time.Time
}

// NewAdviceSnapshot creates a new AdviceSnapshot entity.
func NewAdviceSnapshot(userID uuid.UUID, month string, source AdviceSource, result AdviceResult) *AdviceSnapshot {
	return &AdviceSnapshot{
		ID:              uuid.New(),
		UserID:          userID,
		Month:           month,
		Source:          source,
		Alerts:          result.Alerts,
		Recommendations: result.Recommendations,
		CreatedAt:       time.Now().UTC(),
	}
}
