// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/usecase/goal"
	domainerror "github.com/piggybank/backend/internal/domain/error"
	"github.com/piggybank/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase    *goal.ListGoalsUseCase
	getUseCase     *goal.GetGoalUseCase
	addUseCase     *goal.AddGoalUseCase
	editUseCase    *goal.EditGoalUseCase
	depositUseCase *goal.DepositUseCase
	archiveUseCase *goal.ArchiveGoalUseCase
	restoreUseCase *goal.RestoreGoalUseCase
	deleteUseCase  *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	addUseCase *goal.AddGoalUseCase,
	editUseCase *goal.EditGoalUseCase,
	depositUseCase *goal.DepositUseCase,
	archiveUseCase *goal.ArchiveGoalUseCase,
	restoreUseCase *goal.RestoreGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		addUseCase:     addUseCase,
		editUseCase:    editUseCase,
		depositUseCase: depositUseCase,
		archiveUseCase: archiveUseCase,
		restoreUseCase: restoreUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals, output.MonthlyIncome))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.AddGoalInput{
		Name:               req.Name,
		GoalAmount:         req.GoalAmount.String(),
		CurrentAmount:      req.CurrentAmount.String(),
		PercentageOfIncome: req.PercentageOfIncome.String(),
		FixedAmount:        req.FixedAmount.String(),
		Color:              req.Color,
	}
	if req.Kind != nil {
		input.Kind = *req.Kind
	}
	if req.Period != nil {
		input.Period = *req.Period
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	response := dto.ToGoalResponse(output.Goal)
	response.Persisted = &output.Persisted
	ctx.JSON(http.StatusCreated, response)
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.EditGoalInput{
		GoalID:             goalID,
		Name:               req.Name,
		GoalAmount:         req.GoalAmount.String(),
		PercentageOfIncome: req.PercentageOfIncome.String(),
		FixedAmount:        req.FixedAmount.String(),
	}
	if req.Kind != nil {
		input.Kind = *req.Kind
	}
	if req.Period != nil {
		input.Period = *req.Period
	}

	output, err := c.editUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	response := dto.ToGoalResponse(output.Goal)
	response.Persisted = &output.Persisted
	ctx.JSON(http.StatusOK, response)
}

// Deposit handles POST /goals/:id/deposit requests.
func (c *GoalController) Deposit(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDeposit),
		})
		return
	}

	output, err := c.depositUseCase.Execute(ctx.Request.Context(), goal.DepositInput{
		GoalID: goalID,
		Amount: req.Amount.String(),
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DepositResponse{
		Goal:      dto.ToGoalResponse(output.Goal),
		Completed: output.Completed,
		Persisted: output.Persisted,
	})
}

// Archive handles POST /goals/:id/archive requests.
func (c *GoalController) Archive(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.archiveUseCase.Execute(ctx.Request.Context(), goal.ArchiveGoalInput{GoalID: goalID})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	if !output.Found {
		ctx.Status(http.StatusNoContent)
		return
	}

	response := dto.ToGoalResponse(output.Goal)
	response.Persisted = &output.Persisted
	ctx.JSON(http.StatusOK, response)
}

// Restore handles POST /goals/:id/restore requests.
func (c *GoalController) Restore(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), goal.RestoreGoalInput{GoalID: goalID})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	if !output.Found {
		ctx.Status(http.StatusNoContent)
		return
	}

	response := dto.ToGoalResponse(output.Goal)
	response.Persisted = &output.Persisted
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /goals/:id requests. Deletion is idempotent: an
// unknown ID still returns success.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, ok := parseGoalID(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID}); err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleLedgerError maps domain errors to HTTP responses.
func (c *GoalController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, domainerror.ErrGoalNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domainerror.ErrSnapshotSave):
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// parseGoalID reads the :id path parameter, answering 400 on garbage.
func parseGoalID(ctx *gin.Context) (uuid.UUID, bool) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return uuid.Nil, false
	}
	return goalID, true
}
