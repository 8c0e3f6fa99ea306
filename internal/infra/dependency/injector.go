// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smart-expense/backend/config"
	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/application/usecase/auth"
	"github.com/smart-expense/backend/internal/application/usecase/budget"
	"github.com/smart-expense/backend/internal/application/usecase/dashboard"
	"github.com/smart-expense/backend/internal/application/usecase/expense"
	"github.com/smart-expense/backend/internal/infra/server/router"
	"github.com/smart-expense/backend/internal/integration/adapters"
	"github.com/smart-expense/backend/internal/integration/cache"
	"github.com/smart-expense/backend/internal/integration/email"
	"github.com/smart-expense/backend/internal/integration/email/templates"
	"github.com/smart-expense/backend/internal/integration/entrypoint/controller"
	"github.com/smart-expense/backend/internal/integration/entrypoint/middleware"
	"github.com/smart-expense/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	snapshotRepo := persistence.NewAdviceSnapshotRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	// AI advisor. With no API key configured the advisor reports itself
	// unavailable and the local rule engine serves all advice.
	advisor := adapters.NewGeminiService(cfg.Gemini.APIKey)

	// Redis-backed tips cache. A broken Redis URL degrades to no caching
	// rather than failing startup.
	var tipsCache adapter.TipsCache
	var redisClient *redis.Client
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, savings tips caching disabled", "error", err)
	} else {
		redisClient = redis.NewClient(redisOpts)
		tipsCache = cache.NewRedisTipsCache(redisClient)
	}

	// Email delivery via the queue worker
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, err
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	} else {
		slog.Info("Email worker disabled", "worker_enabled", cfg.Email.WorkerEnabled)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, tipsCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, tipsCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, tipsCache)
	exportCSVUseCase := expense.NewExportCSVUseCase(expenseRepo)
	suggestCategoryUseCase := expense.NewSuggestCategoryUseCase(advisor)

	// Create budget use cases
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, tipsCache)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(expenseRepo, budgetRepo, snapshotRepo, advisor, tipsCache)
	getTrendUseCase := dashboard.NewGetTrendUseCase(expenseRepo)
	getCategoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(expenseRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		exportCSVUseCase,
		suggestCategoryUseCase,
	)

	budgetController := controller.NewBudgetController(
		upsertBudgetUseCase,
		getBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getTrendUseCase,
		getCategoryBreakdownUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		budgetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
