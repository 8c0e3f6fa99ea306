// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/domain/entity"
)

// GeminiService implements the AdvisorService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateSavingsTips asks Gemini for alerts and recommendations over one
// month's spending snapshot.
func (s *GeminiService) GenerateSavingsTips(ctx context.Context, request *adapter.SavingsTipsRequest) (*adapter.SavingsTipsResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildTipsPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseTipsResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// SuggestCategory asks Gemini to map a free-form expense note onto one of the
// closed category set.
func (s *GeminiService) SuggestCategory(ctx context.Context, note string, locale entity.Locale) (entity.Category, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0)

	prompt := fmt.Sprintf(`You classify personal expenses. Given the expense note below, answer with exactly one of these category tokens and nothing else:
Food, Transport, Clothing, Home, Other

The note may be written in any language.

Note: %q`, note)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	category := entity.Category(strings.TrimSpace(text))
	if !entity.IsValidCategory(category) {
		return "", fmt.Errorf("unexpected category from gemini: %q", text)
	}

	return category, nil
}

// buildTipsPrompt creates the savings-tips prompt for Gemini.
func (s *GeminiService) buildTipsPrompt(request *adapter.SavingsTipsRequest) string {
	var sb strings.Builder

	language := "English"
	if request.Locale == entity.LocaleSpanish {
		language = "Spanish"
	}

	sb.WriteString(fmt.Sprintf(`You are a personal finance advisor. Analyze one month of spending and produce short, actionable advice.

IMPORTANT - LANGUAGE:
- Every alert and recommendation must be written in %s
- Keep each message to a single sentence, no markdown

RULES:
- "alerts" warn about problems: spending over or close to the budget limit, or one category dominating the month
- "recommendations" are concrete saving actions; at most 2, most impactful first
- When there is no budget limit, do not invent one; recommend setting a budget instead
- Amounts in the data are plain decimal numbers in the user's currency; never convert them

SPENDING DATA:
`, language))

	sb.WriteString(fmt.Sprintf("- Month: %s\n", request.Month))
	sb.WriteString(fmt.Sprintf("- Total spent: %s\n", request.TotalSpent))
	if request.BudgetLimit != "" {
		sb.WriteString(fmt.Sprintf("- Budget limit: %s\n", request.BudgetLimit))
	} else {
		sb.WriteString("- Budget limit: not set\n")
	}
	for _, c := range entity.Categories {
		if amount, ok := request.ByCategory[c]; ok {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", c, amount))
		}
	}

	sb.WriteString(`
Respond with a single JSON object:
{
  "alerts": ["string"],
  "recommendations": ["string"]
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiTips represents the raw response from Gemini.
type geminiTips struct {
	Alerts          []string `json:"alerts"`
	Recommendations []string `json:"recommendations"`
}

// parseTipsResponse parses the Gemini response into a SavingsTipsResult.
func (s *GeminiService) parseTipsResponse(resp *genai.GenerateContentResponse) (*adapter.SavingsTipsResult, error) {
	textContent := extractText(resp)
	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var tips geminiTips
	if err := json.Unmarshal([]byte(textContent), &tips); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	if tips.Alerts == nil {
		tips.Alerts = []string{}
	}
	if tips.Recommendations == nil {
		tips.Recommendations = []string{}
	}
	if len(tips.Recommendations) > entity.MaxRecommendations {
		tips.Recommendations = tips.Recommendations[:entity.MaxRecommendations]
	}

	return &adapter.SavingsTipsResult{
		Alerts:          tips.Alerts,
		Recommendations: tips.Recommendations,
	}, nil
}

// extractText pulls the first text part out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text)
		}
	}
	return ""
}
