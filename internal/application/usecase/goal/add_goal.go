// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/domain/entity"
	domainerror "github.com/piggybank/backend/internal/domain/error"
)

// AddGoalInput represents the input for goal creation. Numeric fields arrive
// as raw text, the way form inputs deliver them.
type AddGoalInput struct {
	Name               string
	GoalAmount         string
	CurrentAmount      string // Optional seed, defaults to 0
	Kind               string // Optional, defaults to one-time
	Period             string // Optional, defaults to monthly
	PercentageOfIncome string // Optional
	FixedAmount        string // Optional
	Color              string // Optional, assigned randomly when empty
}

// AddGoalOutput represents the output of goal creation.
type AddGoalOutput struct {
	Goal      *entity.Goal
	Persisted bool
}

// AddGoalUseCase handles goal creation logic.
type AddGoalUseCase struct {
	goals *store.GoalStore
}

// NewAddGoalUseCase creates a new AddGoalUseCase instance.
func NewAddGoalUseCase(goals *store.GoalStore) *AddGoalUseCase {
	return &AddGoalUseCase{goals: goals}
}

// Execute performs the goal creation.
func (uc *AddGoalUseCase) Execute(ctx context.Context, input AddGoalInput) (*AddGoalOutput, error) {
	goalAmount, err := parseRequiredAmount(input.GoalAmount, domainerror.ErrCodeInvalidGoalAmount, "goal amount")
	if err != nil {
		return nil, err
	}

	draft := store.GoalDraft{
		Name:               input.Name,
		GoalAmount:         goalAmount,
		CurrentAmount:      parseOptionalAmount(input.CurrentAmount),
		Kind:               goalKind(input.Kind),
		Period:             goalPeriod(input.Period),
		PercentageOfIncome: parseOptionalAmount(input.PercentageOfIncome),
		FixedAmount:        parseOptionalAmount(input.FixedAmount),
		Color:              input.Color,
	}

	created, err := uc.goals.AddGoal(ctx, draft)
	if created == nil {
		return nil, err
	}

	persisted, err := persistedResult(err)
	if err != nil {
		return nil, err
	}

	return &AddGoalOutput{Goal: created, Persisted: persisted}, nil
}

// goalKind applies the creation default for an omitted kind.
func goalKind(raw string) entity.GoalKind {
	if raw == "" {
		return entity.GoalKindOneTime
	}
	return entity.GoalKind(raw)
}

// goalPeriod applies the creation default for an omitted period.
func goalPeriod(raw string) entity.GoalPeriod {
	if raw == "" {
		return entity.GoalPeriodMonthly
	}
	return entity.GoalPeriod(raw)
}
