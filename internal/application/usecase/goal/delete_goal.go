// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/store"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Persisted bool
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goals *store.GoalStore
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goals *store.GoalStore) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{goals: goals}
}

// Execute removes the goal. Deletion is idempotent: an absent ID succeeds.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	persisted, err := persistedResult(uc.goals.DeleteGoal(ctx, input.GoalID))
	if err != nil {
		return nil, err
	}

	return &DeleteGoalOutput{Persisted: persisted}, nil
}
