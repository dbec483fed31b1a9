// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggybank/backend/internal/application/usecase/goal"
	"github.com/piggybank/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles monthly income endpoints.
type IncomeController struct {
	listUseCase      *goal.ListGoalsUseCase
	setIncomeUseCase *goal.SetIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(listUseCase *goal.ListGoalsUseCase, setIncomeUseCase *goal.SetIncomeUseCase) *IncomeController {
	return &IncomeController{
		listUseCase:      listUseCase,
		setIncomeUseCase: setIncomeUseCase,
	}
}

// Get handles GET /income requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve income",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.IncomeResponse{MonthlyIncome: output.MonthlyIncome})
}

// Set handles PUT /income requests. Garbage input coerces to zero rather
// than failing, matching the declared-income contract.
func (c *IncomeController) Set(ctx *gin.Context) {
	var req dto.SetIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setIncomeUseCase.Execute(ctx.Request.Context(), goal.SetIncomeInput{
		Amount: req.MonthlyIncome.String(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to set income",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.IncomeResponse{
		MonthlyIncome: output.MonthlyIncome,
		Persisted:     &output.Persisted,
	})
}
