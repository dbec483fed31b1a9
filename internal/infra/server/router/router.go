// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/piggybank/backend/internal/integration/entrypoint/controller"
	"github.com/piggybank/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	goalController         *controller.GoalController
	incomeController       *controller.IncomeController
	contributionController *controller.ContributionController
	analysisController     *controller.AnalysisController
	summaryController      *controller.SummaryController
	profileController      *controller.ProfileController
	identityMiddleware     *middleware.IdentityMiddleware
	analysisRateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	goalController *controller.GoalController,
	incomeController *controller.IncomeController,
	contributionController *controller.ContributionController,
	analysisController *controller.AnalysisController,
	summaryController *controller.SummaryController,
	profileController *controller.ProfileController,
	identityMiddleware *middleware.IdentityMiddleware,
	analysisRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:       healthController,
		goalController:         goalController,
		incomeController:       incomeController,
		contributionController: contributionController,
		analysisController:     analysisController,
		summaryController:      summaryController,
		profileController:      profileController,
		identityMiddleware:     identityMiddleware,
		analysisRateLimiter:    analysisRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api/v1")
	api.Use(r.identityMiddleware.Resolve())

	goals := api.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.goalController.Create)
		goals.GET("/:id", r.goalController.Get)
		goals.PUT("/:id", r.goalController.Update)
		goals.DELETE("/:id", r.goalController.Delete)
		goals.POST("/:id/deposit", r.goalController.Deposit)
		goals.POST("/:id/archive", r.goalController.Archive)
		goals.POST("/:id/restore", r.goalController.Restore)
	}

	api.GET("/income", r.incomeController.Get)
	api.PUT("/income", r.incomeController.Set)

	api.POST("/contributions/process", r.contributionController.Process)

	api.GET("/analysis", r.analysisRateLimiter.Middleware(), r.analysisController.Analyze)

	api.GET("/summary", r.summaryController.Get)
	api.GET("/profile", r.profileController.Get)
}
