// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggybank/backend/internal/application/usecase/forecast"
	"github.com/piggybank/backend/internal/integration/entrypoint/dto"
)

// AnalysisController handles the savings-analysis endpoint.
type AnalysisController struct {
	analyzeUseCase *forecast.AnalyzeGoalsUseCase
}

// NewAnalysisController creates a new analysis controller instance.
func NewAnalysisController(analyzeUseCase *forecast.AnalyzeGoalsUseCase) *AnalysisController {
	return &AnalysisController{analyzeUseCase: analyzeUseCase}
}

// Analyze handles GET /analysis requests.
func (c *AnalysisController) Analyze(ctx *gin.Context) {
	output, err := c.analyzeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			ctx.Status(http.StatusRequestTimeout)
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to analyze goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalysisResponse(output))
}
