// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/domain/entity"
)

// RestoreGoalInput represents the input for restoring an archived goal.
type RestoreGoalInput struct {
	GoalID uuid.UUID
}

// RestoreGoalOutput represents the output of restoring a goal.
type RestoreGoalOutput struct {
	Goal      *entity.Goal
	Found     bool
	Persisted bool
}

// RestoreGoalUseCase handles goal restoration.
type RestoreGoalUseCase struct {
	goals *store.GoalStore
}

// NewRestoreGoalUseCase creates a new RestoreGoalUseCase instance.
func NewRestoreGoalUseCase(goals *store.GoalStore) *RestoreGoalUseCase {
	return &RestoreGoalUseCase{goals: goals}
}

// Execute restores the goal. Restoring a goal that is not archived, or that
// does not exist, is a no-op.
func (uc *RestoreGoalUseCase) Execute(ctx context.Context, input RestoreGoalInput) (*RestoreGoalOutput, error) {
	restored, err := uc.goals.Restore(ctx, input.GoalID)

	persisted, err := persistedResult(err)
	if err != nil {
		return nil, err
	}

	return &RestoreGoalOutput{
		Goal:      restored,
		Found:     restored != nil,
		Persisted: persisted,
	}, nil
}
