// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/domain/entity"
	domainerror "github.com/piggybank/backend/internal/domain/error"
)

// ListGoalsOutput represents the output of listing the ledger.
type ListGoalsOutput struct {
	Goals         []*entity.Goal
	MonthlyIncome float64
}

// ListGoalsUseCase returns a read-only snapshot of the ledger.
type ListGoalsUseCase struct {
	goals *store.GoalStore
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goals *store.GoalStore) *ListGoalsUseCase {
	return &ListGoalsUseCase{goals: goals}
}

// Execute lists all goals in insertion order.
func (uc *ListGoalsUseCase) Execute(_ context.Context) (*ListGoalsOutput, error) {
	snapshot := uc.goals.Snapshot()
	return &ListGoalsOutput{
		Goals:         snapshot.Goals,
		MonthlyIncome: snapshot.MonthlyIncome,
	}, nil
}

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of fetching a single goal.
type GetGoalOutput struct {
	Goal *entity.Goal
}

// GetGoalUseCase fetches one goal by ID.
type GetGoalUseCase struct {
	goals *store.GoalStore
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goals *store.GoalStore) *GetGoalUseCase {
	return &GetGoalUseCase{goals: goals}
}

// Execute returns the goal or a not-found error.
func (uc *GetGoalUseCase) Execute(_ context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal := uc.goals.Snapshot().FindGoal(input.GoalID)
	if goal == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	return &GetGoalOutput{Goal: goal}, nil
}
