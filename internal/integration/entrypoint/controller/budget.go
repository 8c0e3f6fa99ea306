// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/smart-expense/backend/internal/application/usecase/budget"
	domainerror "github.com/smart-expense/backend/internal/domain/error"
	"github.com/smart-expense/backend/internal/integration/entrypoint/dto"
	"github.com/smart-expense/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles monthly budget endpoints.
type BudgetController struct {
	upsertUseCase *budget.UpsertBudgetUseCase
	getUseCase    *budget.GetBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	upsertUseCase *budget.UpsertBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		upsertUseCase: upsertUseCase,
		getUseCase:    getUseCase,
	}
}

// Upsert handles PUT /budgets/:month requests. Setting a budget for a month
// that already has one replaces its limit.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpsertBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBudgetLimit),
		})
		return
	}

	input := budget.UpsertBudgetInput{
		UserID: userID,
		Month:  ctx.Param("month"),
		Limit:  decimal.NewFromFloat(req.Limit),
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /budgets/:month requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.GetBudgetInput{
		UserID: userID,
		Month:  ctx.Param("month"),
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetLimit,
		domainerror.ErrCodeInvalidBudgetMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
