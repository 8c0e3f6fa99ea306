// Package dashboard contains dashboard-related use cases: the monthly
// summary, the spending trend, and the category breakdown.
package dashboard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/application/usecase/insights"
	"github.com/smart-expense/backend/internal/domain/entity"
)

const (
	// advisorTimeout bounds the AI call; past it the local engine answers.
	advisorTimeout = 5 * time.Second

	// tipsCacheTTL keeps advisor output for a day; edits to expenses or the
	// budget invalidate it earlier.
	tipsCacheTTL = 24 * time.Hour
)

// GetSummaryInput represents the input for the monthly summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  string // Optional "YYYY-MM"; empty means the current month
	Locale entity.Locale
}

// GetSummaryOutput represents the output of the monthly summary.
type GetSummaryOutput struct {
	Month             string
	TotalSpent        decimal.Decimal
	ByCategory        map[entity.Category]decimal.Decimal
	AverageDailySpend decimal.Decimal
	ExpenseCount      int
	BudgetLimit       *decimal.Decimal // nil when no budget is set
	Remaining         *decimal.Decimal // nil when no budget is set
	SpendRatio        float64
	PercentChange     float64 // Total spend vs the previous month
	Alerts            []string
	Recommendations   []string
	AdviceSource      entity.AdviceSource
}

// GetSummaryUseCase assembles the monthly dashboard summary: aggregation,
// budget evaluation, and savings advice.
type GetSummaryUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	budgetRepo   adapter.BudgetRepository
	snapshotRepo adapter.AdviceSnapshotRepository
	advisor      adapter.AdvisorService
	tipsCache    adapter.TipsCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	snapshotRepo adapter.AdviceSnapshotRepository,
	advisor adapter.AdvisorService,
	tipsCache adapter.TipsCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo:  expenseRepo,
		budgetRepo:   budgetRepo,
		snapshotRepo: snapshotRepo,
		advisor:      advisor,
		tipsCache:    tipsCache,
	}
}

// Execute assembles the summary for one month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	month := input.Month
	if month == "" {
		month = entity.MonthOf(time.Now())
	}
	locale := insights.NormalizeLocale(input.Locale)

	period, err := insights.MonthPeriod(month)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByUserAndDateRange(ctx, input.UserID, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	budget, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	agg := insights.Aggregate(expenses, period)
	eval := insights.Evaluate(agg, budget)
	advice, source := uc.advise(ctx, input.UserID, month, agg, budget, locale)

	// Previous-month comparison. A missing history is a zero, not an error.
	previousTotal := decimal.Zero
	previousPeriod, _ := insights.PreviousMonthPeriod(month)
	previousExpenses, err := uc.expenseRepo.FindByUserAndDateRange(ctx, input.UserID, previousPeriod.From, previousPeriod.To)
	if err != nil {
		slog.Warn("Failed to load previous month expenses", "error", err, "userID", input.UserID)
	} else {
		previousTotal = insights.Aggregate(previousExpenses, previousPeriod).TotalSpent
	}

	output := &GetSummaryOutput{
		Month:             month,
		TotalSpent:        agg.TotalSpent,
		ByCategory:        agg.ByCategory,
		AverageDailySpend: agg.AverageDailySpend,
		ExpenseCount:      agg.Count,
		Remaining:         eval.Remaining,
		SpendRatio:        eval.Ratio,
		PercentChange:     insights.PercentChange(agg.TotalSpent, previousTotal),
		Alerts:            advice.Alerts,
		Recommendations:   advice.Recommendations,
		AdviceSource:      source,
	}
	if budget != nil {
		limit := budget.Limit
		output.BudgetLimit = &limit
	}

	return output, nil
}

// advise produces the savings advice, preferring the AI advisor with a cache
// in front and the local rule engine as fallback. Failures never propagate:
// the summary always carries advice from one of the engines.
func (uc *GetSummaryUseCase) advise(
	ctx context.Context,
	userID uuid.UUID,
	month string,
	agg insights.AggregationResult,
	budget *entity.Budget,
	locale entity.Locale,
) (entity.AdviceResult, entity.AdviceSource) {
	local := func() (entity.AdviceResult, entity.AdviceSource) {
		return insights.Advise(agg, budget, locale), entity.AdviceSourceLocal
	}

	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return local()
	}

	request := buildTipsRequest(month, agg, budget, locale)
	cacheKey := tipsCacheKey(userID, month, request)

	if uc.tipsCache != nil {
		if cached, ok, err := uc.tipsCache.Get(ctx, cacheKey); err != nil {
			slog.Warn("Tips cache read failed", "error", err)
		} else if ok {
			return entity.AdviceResult{
				Alerts:          cached.Alerts,
				Recommendations: cached.Recommendations,
			}, entity.AdviceSourceAI
		}
	}

	advisorCtx, cancel := context.WithTimeout(ctx, advisorTimeout)
	defer cancel()

	result, err := uc.advisor.GenerateSavingsTips(advisorCtx, request)
	if err != nil {
		slog.Warn("AI advisor failed, using local rules", "error", err, "userID", userID)
		return local()
	}

	if uc.tipsCache != nil {
		if err := uc.tipsCache.Set(ctx, cacheKey, result, tipsCacheTTL); err != nil {
			slog.Warn("Tips cache write failed", "error", err)
		}
	}

	advice := entity.AdviceResult{
		Alerts:          result.Alerts,
		Recommendations: result.Recommendations,
	}

	if uc.snapshotRepo != nil {
		snapshot := entity.NewAdviceSnapshot(userID, month, entity.AdviceSourceAI, advice)
		if err := uc.snapshotRepo.Create(ctx, snapshot); err != nil {
			slog.Warn("Failed to store advice snapshot", "error", err, "userID", userID)
		}
	}

	return advice, entity.AdviceSourceAI
}

// buildTipsRequest flattens the month snapshot into the provider-agnostic
// advisor request.
func buildTipsRequest(month string, agg insights.AggregationResult, budget *entity.Budget, locale entity.Locale) *adapter.SavingsTipsRequest {
	byCategory := make(map[entity.Category]string, len(agg.ByCategory))
	for c, amount := range agg.ByCategory {
		byCategory[c] = amount.String()
	}

	request := &adapter.SavingsTipsRequest{
		Month:      month,
		Locale:     locale,
		TotalSpent: agg.TotalSpent.String(),
		ByCategory: byCategory,
	}
	if budget != nil {
		request.BudgetLimit = budget.Limit.String()
	}
	return request
}

// tipsCacheKey fingerprints the advisor inputs so the cache turns over
// whenever the underlying numbers change.
func tipsCacheKey(userID uuid.UUID, month string, request *adapter.SavingsTipsRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", request.Locale, request.TotalSpent, request.BudgetLimit, month)

	categories := make([]string, 0, len(request.ByCategory))
	for c := range request.ByCategory {
		categories = append(categories, string(c))
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Fprintf(h, "|%s=%s", c, request.ByCategory[entity.Category(c)])
	}

	return fmt.Sprintf("tips:%s:%s:%s", userID, month, hex.EncodeToString(h.Sum(nil)))
}
