// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggybank/backend/internal/application/usecase/contribution"
	"github.com/piggybank/backend/internal/integration/entrypoint/dto"
)

// ContributionController handles the automatic-deposit batch endpoint.
type ContributionController struct {
	processUseCase *contribution.ProcessDepositsUseCase
}

// NewContributionController creates a new contribution controller instance.
func NewContributionController(processUseCase *contribution.ProcessDepositsUseCase) *ContributionController {
	return &ContributionController{processUseCase: processUseCase}
}

// Process handles POST /contributions/process requests. Each call applies
// one full contribution cycle; repeating the call credits goals again.
func (c *ContributionController) Process(ctx *gin.Context) {
	output, err := c.processUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process automatic deposits",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProcessDepositsResponse(output.Credited, output.Persisted))
}
