// Package summary contains the ledger totals use case.
package summary

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/piggybank/backend/internal/application/store"
)

// GetSummaryOutput represents the ledger-wide totals shown on the dashboard.
type GetSummaryOutput struct {
	TotalSaved      decimal.Decimal
	TotalGoalAmount decimal.Decimal
	ActiveTargets   int
	ArchivedTargets int
	MonthlyIncome   float64
}

// GetSummaryUseCase aggregates the ledger. Totals are summed as decimals so
// that many small deposits do not accumulate float drift in the figures the
// user sees.
type GetSummaryUseCase struct {
	goals *store.GoalStore
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(goals *store.GoalStore) *GetSummaryUseCase {
	return &GetSummaryUseCase{goals: goals}
}

// Execute computes the totals.
func (uc *GetSummaryUseCase) Execute(_ context.Context) (*GetSummaryOutput, error) {
	snapshot := uc.goals.Snapshot()

	totalSaved := decimal.Zero
	totalGoal := decimal.Zero
	active := 0
	archived := 0

	for _, goal := range snapshot.Goals {
		totalSaved = totalSaved.Add(decimal.NewFromFloat(goal.CurrentAmount))
		totalGoal = totalGoal.Add(decimal.NewFromFloat(goal.GoalAmount))
		if goal.Archived {
			archived++
		} else {
			active++
		}
	}

	return &GetSummaryOutput{
		TotalSaved:      totalSaved.Round(2),
		TotalGoalAmount: totalGoal.Round(2),
		ActiveTargets:   active,
		ArchivedTargets: archived,
		MonthlyIncome:   snapshot.MonthlyIncome,
	}, nil
}
