// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/piggybank/backend/internal/application/store"
)

// SetIncomeInput represents the input for declaring the monthly income.
type SetIncomeInput struct {
	Amount string
}

// SetIncomeOutput represents the output of setting the monthly income.
type SetIncomeOutput struct {
	MonthlyIncome float64
	Persisted     bool
}

// SetIncomeUseCase replaces the declared monthly income.
type SetIncomeUseCase struct {
	goals *store.GoalStore
}

// NewSetIncomeUseCase creates a new SetIncomeUseCase instance.
func NewSetIncomeUseCase(goals *store.GoalStore) *SetIncomeUseCase {
	return &SetIncomeUseCase{goals: goals}
}

// Execute sets the income. Negative or unparseable input is coerced to zero,
// never rejected.
func (uc *SetIncomeUseCase) Execute(ctx context.Context, input SetIncomeInput) (*SetIncomeOutput, error) {
	income, err := uc.goals.SetMonthlyIncome(ctx, parseOptionalAmount(input.Amount))

	persisted, err := persistedResult(err)
	if err != nil {
		return nil, err
	}

	return &SetIncomeOutput{MonthlyIncome: income, Persisted: persisted}, nil
}
