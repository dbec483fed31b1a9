// Package forecast contains the savings-analysis use case.
package forecast

import (
	"context"
	"time"

	"github.com/piggybank/backend/internal/application/adapter"
	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/domain/entity"
	"github.com/piggybank/backend/internal/domain/forecast"
)

// GoalAnalysis pairs a goal with its projection.
type GoalAnalysis struct {
	Goal       *entity.Goal
	Projection forecast.Projection
}

// AnalyzeGoalsOutput represents the output of the analysis run.
type AnalyzeGoalsOutput struct {
	Analyses      []GoalAnalysis
	MonthlyIncome float64
}

// AnalyzeGoalsUseCase produces read-only projections for every goal in the
// ledger. It never mutates anything; the optional delay only animates a
// "working" state in the presentation layer.
type AnalyzeGoalsUseCase struct {
	goals  *store.GoalStore
	clock  adapter.Clock
	random adapter.RandomSource
	delay  time.Duration
}

// NewAnalyzeGoalsUseCase creates a new AnalyzeGoalsUseCase instance.
func NewAnalyzeGoalsUseCase(goals *store.GoalStore, clock adapter.Clock, random adapter.RandomSource, delay time.Duration) *AnalyzeGoalsUseCase {
	return &AnalyzeGoalsUseCase{
		goals:  goals,
		clock:  clock,
		random: random,
		delay:  delay,
	}
}

// Execute projects every goal against the current income snapshot.
func (uc *AnalyzeGoalsUseCase) Execute(ctx context.Context) (*AnalyzeGoalsOutput, error) {
	if uc.delay > 0 {
		select {
		case <-time.After(uc.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	snapshot := uc.goals.Snapshot()
	now := uc.clock.Now()

	analyses := make([]GoalAnalysis, len(snapshot.Goals))
	for i, goal := range snapshot.Goals {
		analyses[i] = GoalAnalysis{
			Goal:       goal,
			Projection: forecast.Project(goal, snapshot.MonthlyIncome, now, uc.random),
		}
	}

	return &AnalyzeGoalsOutput{
		Analyses:      analyses,
		MonthlyIncome: snapshot.MonthlyIncome,
	}, nil
}
