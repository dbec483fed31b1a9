// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/domain/entity"
)

// ArchiveGoalInput represents the input for archiving a goal.
type ArchiveGoalInput struct {
	GoalID uuid.UUID
}

// ArchiveGoalOutput represents the output of archiving a goal. Found is
// false when the ID did not match any goal; that is a no-op, not an error.
type ArchiveGoalOutput struct {
	Goal      *entity.Goal
	Found     bool
	Persisted bool
}

// ArchiveGoalUseCase handles goal archiving.
type ArchiveGoalUseCase struct {
	goals *store.GoalStore
}

// NewArchiveGoalUseCase creates a new ArchiveGoalUseCase instance.
func NewArchiveGoalUseCase(goals *store.GoalStore) *ArchiveGoalUseCase {
	return &ArchiveGoalUseCase{goals: goals}
}

// Execute archives the goal. Archiving an already-archived goal is a no-op.
func (uc *ArchiveGoalUseCase) Execute(ctx context.Context, input ArchiveGoalInput) (*ArchiveGoalOutput, error) {
	archived, err := uc.goals.Archive(ctx, input.GoalID)

	persisted, err := persistedResult(err)
	if err != nil {
		return nil, err
	}

	return &ArchiveGoalOutput{
		Goal:      archived,
		Found:     archived != nil,
		Persisted: persisted,
	}, nil
}
