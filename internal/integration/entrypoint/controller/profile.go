// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piggybank/backend/internal/application/usecase/goal"
	"github.com/piggybank/backend/internal/integration/entrypoint/dto"
	"github.com/piggybank/backend/internal/integration/entrypoint/middleware"
)

// defaultDisplayName labels the profile when no identity token was presented.
const defaultDisplayName = "Saver"

// ProfileController handles the profile endpoint.
type ProfileController struct {
	listUseCase *goal.ListGoalsUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(listUseCase *goal.ListGoalsUseCase) *ProfileController {
	return &ProfileController{listUseCase: listUseCase}
}

// Get handles GET /profile requests. The display name comes from the
// optional identity token and has no effect on ledger data.
func (c *ProfileController) Get(ctx *gin.Context) {
	displayName, ok := middleware.GetDisplayNameFromContext(ctx)
	if !ok {
		displayName = defaultDisplayName
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve profile",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(displayName, output.Goals))
}
