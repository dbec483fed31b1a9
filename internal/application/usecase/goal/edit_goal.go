// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/domain/entity"
	domainerror "github.com/piggybank/backend/internal/domain/error"
)

// EditGoalInput represents the input for goal editing. The editable fields
// are replaced as a unit, re-validated with the same rules as creation; ID,
// creation timestamp, funded amount, color and archived flag are untouched.
type EditGoalInput struct {
	GoalID             uuid.UUID
	Name               string
	GoalAmount         string
	Kind               string
	Period             string
	PercentageOfIncome string
	FixedAmount        string
}

// EditGoalOutput represents the output of goal editing.
type EditGoalOutput struct {
	Goal      *entity.Goal
	Persisted bool
}

// EditGoalUseCase handles goal update logic.
type EditGoalUseCase struct {
	goals *store.GoalStore
}

// NewEditGoalUseCase creates a new EditGoalUseCase instance.
func NewEditGoalUseCase(goals *store.GoalStore) *EditGoalUseCase {
	return &EditGoalUseCase{goals: goals}
}

// Execute performs the goal update.
func (uc *EditGoalUseCase) Execute(ctx context.Context, input EditGoalInput) (*EditGoalOutput, error) {
	goalAmount, err := parseRequiredAmount(input.GoalAmount, domainerror.ErrCodeInvalidGoalAmount, "goal amount")
	if err != nil {
		return nil, err
	}

	draft := store.GoalDraft{
		Name:               input.Name,
		GoalAmount:         goalAmount,
		Kind:               goalKind(input.Kind),
		Period:             goalPeriod(input.Period),
		PercentageOfIncome: parseOptionalAmount(input.PercentageOfIncome),
		FixedAmount:        parseOptionalAmount(input.FixedAmount),
	}

	updated, err := uc.goals.EditGoal(ctx, input.GoalID, draft)
	if updated == nil {
		return nil, err
	}

	persisted, err := persistedResult(err)
	if err != nil {
		return nil, err
	}

	return &EditGoalOutput{Goal: updated, Persisted: persisted}, nil
}
