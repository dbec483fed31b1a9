// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggybank/backend/internal/application/usecase/summary"
	"github.com/piggybank/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the ledger totals endpoint.
type SummaryController struct {
	summaryUseCase *summary.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(summaryUseCase *summary.GetSummaryUseCase) *SummaryController {
	return &SummaryController{summaryUseCase: summaryUseCase}
}

// Get handles GET /summary requests.
func (c *SummaryController) Get(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
