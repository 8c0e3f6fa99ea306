// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smart-expense/backend/internal/application/usecase/dashboard"
	"github.com/smart-expense/backend/internal/domain/entity"
	domainerror "github.com/smart-expense/backend/internal/domain/error"
	"github.com/smart-expense/backend/internal/integration/entrypoint/dto"
	"github.com/smart-expense/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	trendUseCase     *dashboard.GetTrendUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	trendUseCase *dashboard.GetTrendUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		trendUseCase:     trendUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetSummaryInput{
		UserID: userID,
		Month:  ctx.Query("month"),
		Locale: entity.Locale(ctx.Query("locale")),
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetTrend handles GET /dashboard/trend requests.
func (c *DashboardController) GetTrend(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetTrendInput{
		UserID: userID,
		Locale: entity.Locale(ctx.Query("locale")),
	}

	if monthsStr := ctx.Query("months"); monthsStr != "" {
		months, err := strconv.Atoi(monthsStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
				Code:  string(domainerror.ErrCodeInvalidTrendWindow),
			})
			return
		}
		input.Months = months
	}

	output, err := c.trendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendResponse(output))
}

// GetCategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetCategoryBreakdownInput{
		UserID:  userID,
		Month:   ctx.Query("month"),
		Compare: ctx.Query("compare") == "true",
		Locale:  entity.Locale(ctx.Query("locale")),
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMonthFormat,
		domainerror.ErrCodeInvalidTrendWindow,
		domainerror.ErrCodeInvalidLocale:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
