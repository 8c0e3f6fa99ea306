// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/smart-expense/backend/internal/application/usecase/dashboard"
	"github.com/smart-expense/backend/internal/application/usecase/insights"
)

// SummaryResponse represents the monthly dashboard summary.
type SummaryResponse struct {
	Month             string            `json:"month"`
	TotalSpent        string            `json:"total_spent"`
	ByCategory        map[string]string `json:"by_category"`
	AverageDailySpend string            `json:"average_daily_spend"`
	ExpenseCount      int               `json:"expense_count"`
	BudgetLimit       *string           `json:"budget_limit"`
	Remaining         *string           `json:"remaining"`
	SpendRatio        float64           `json:"spend_ratio"`
	PercentChange     float64           `json:"percent_change"`
	Alerts            []string          `json:"alerts"`
	Recommendations   []string          `json:"recommendations"`
	AdviceSource      string            `json:"advice_source"`
}

// TrendPointResponse represents one month bucket in the trend series.
type TrendPointResponse struct {
	Month string `json:"month"`
	Label string `json:"label"`
	Total string `json:"total"`
}

// TrendResponse represents the monthly spending trend.
type TrendResponse struct {
	Points []TrendPointResponse `json:"points"`
}

// CategoryPointResponse represents one category in the breakdown series.
type CategoryPointResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Current  string `json:"current"`
	Previous string `json:"previous"`
}

// CategoryBreakdownResponse represents the per-category chart series.
type CategoryBreakdownResponse struct {
	Month  string                  `json:"month"`
	Points []CategoryPointResponse `json:"points"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	byCategory := make(map[string]string, len(output.ByCategory))
	for category, amount := range output.ByCategory {
		byCategory[string(category)] = amount.String()
	}

	response := SummaryResponse{
		Month:             output.Month,
		TotalSpent:        output.TotalSpent.String(),
		ByCategory:        byCategory,
		AverageDailySpend: output.AverageDailySpend.String(),
		ExpenseCount:      output.ExpenseCount,
		SpendRatio:        output.SpendRatio,
		PercentChange:     output.PercentChange,
		Alerts:            output.Alerts,
		Recommendations:   output.Recommendations,
		AdviceSource:      string(output.AdviceSource),
	}

	if output.BudgetLimit != nil {
		limit := output.BudgetLimit.String()
		response.BudgetLimit = &limit
	}
	if output.Remaining != nil {
		remaining := output.Remaining.String()
		response.Remaining = &remaining
	}

	if response.Alerts == nil {
		response.Alerts = []string{}
	}
	if response.Recommendations == nil {
		response.Recommendations = []string{}
	}

	return response
}

// ToTrendResponse converts a GetTrendOutput to a TrendResponse DTO.
func ToTrendResponse(output *dashboard.GetTrendOutput) TrendResponse {
	points := make([]TrendPointResponse, len(output.Points))
	for i, point := range output.Points {
		points[i] = TrendPointResponse{
			Month: point.Month,
			Label: point.Label,
			Total: point.Total.String(),
		}
	}
	return TrendResponse{Points: points}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to a
// CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	return CategoryBreakdownResponse{
		Month:  output.Month,
		Points: toCategoryPointResponses(output.Points),
	}
}

func toCategoryPointResponses(points []insights.CategoryPoint) []CategoryPointResponse {
	responses := make([]CategoryPointResponse, len(points))
	for i, point := range points {
		responses[i] = CategoryPointResponse{
			Category: string(point.Category),
			Label:    point.Label,
			Current:  point.Current.String(),
			Previous: point.Previous.String(),
		}
	}
	return responses
}
