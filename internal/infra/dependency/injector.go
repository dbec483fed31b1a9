// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/piggybank/backend/config"
	"github.com/piggybank/backend/internal/application/adapter"
	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/application/usecase/contribution"
	"github.com/piggybank/backend/internal/application/usecase/forecast"
	"github.com/piggybank/backend/internal/application/usecase/goal"
	"github.com/piggybank/backend/internal/application/usecase/summary"
	"github.com/piggybank/backend/internal/infra/server/router"
	"github.com/piggybank/backend/internal/integration/adapters"
	"github.com/piggybank/backend/internal/integration/entrypoint/controller"
	"github.com/piggybank/backend/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  *store.GoalStore
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The ledger repository and storage health check are built by the caller,
// which knows which backend was configured.
func NewInjector(cfg *config.Config, ledgerRepo adapter.LedgerRepository, storageHealth func() bool) *Injector {
	clock := adapters.NewSystemClock()
	random := adapters.NewRandomSource(time.Now().UnixNano())
	identityService := adapters.NewIdentityService(cfg.Identity.Secret)

	// The store owns the ledger for the whole session; load once, up front.
	goalStore := store.NewGoalStore(ledgerRepo, clock, random)
	goalStore.LoadSnapshot(context.Background())

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalStore)
	getGoalUseCase := goal.NewGetGoalUseCase(goalStore)
	addGoalUseCase := goal.NewAddGoalUseCase(goalStore)
	editGoalUseCase := goal.NewEditGoalUseCase(goalStore)
	depositUseCase := goal.NewDepositUseCase(goalStore)
	archiveGoalUseCase := goal.NewArchiveGoalUseCase(goalStore)
	restoreGoalUseCase := goal.NewRestoreGoalUseCase(goalStore)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalStore)
	setIncomeUseCase := goal.NewSetIncomeUseCase(goalStore)

	// Create engine use cases
	processDepositsUseCase := contribution.NewProcessDepositsUseCase(goalStore)
	analyzeGoalsUseCase := forecast.NewAnalyzeGoalsUseCase(goalStore, clock, random, cfg.Analysis.Delay)
	getSummaryUseCase := summary.NewGetSummaryUseCase(goalStore)

	// Create controllers
	healthController := controller.NewHealthController(storageHealth)
	goalController := controller.NewGoalController(
		listGoalsUseCase,
		getGoalUseCase,
		addGoalUseCase,
		editGoalUseCase,
		depositUseCase,
		archiveGoalUseCase,
		restoreGoalUseCase,
		deleteGoalUseCase,
	)
	incomeController := controller.NewIncomeController(listGoalsUseCase, setIncomeUseCase)
	contributionController := controller.NewContributionController(processDepositsUseCase)
	analysisController := controller.NewAnalysisController(analyzeGoalsUseCase)
	summaryController := controller.NewSummaryController(getSummaryUseCase)
	profileController := controller.NewProfileController(listGoalsUseCase)

	// Create middleware
	identityMiddleware := middleware.NewIdentityMiddleware(identityService)
	analysisRateLimiter := middleware.NewRateLimiterWithConfig(cfg.Analysis.RateLimitMax, cfg.Analysis.RateLimitWindow)

	r := router.NewRouter(
		healthController,
		goalController,
		incomeController,
		contributionController,
		analysisController,
		summaryController,
		profileController,
		identityMiddleware,
		analysisRateLimiter,
	)

	return &Injector{
		Config: cfg,
		Store:  goalStore,
		Router: r,
	}
}
