// Package contribution contains the automatic-deposit batch use case.
package contribution

import (
	"context"
	"errors"

	"github.com/piggybank/backend/internal/application/store"
	domainerror "github.com/piggybank/backend/internal/domain/error"
)

// ProcessDepositsOutput reports every goal the batch credited.
type ProcessDepositsOutput struct {
	Credited  []store.CreditedGoal
	Persisted bool
}

// ProcessDepositsUseCase runs one automatic contribution cycle over all
// active periodic goals.
//
// The batch is triggered explicitly by the user and carries no guard against
// double application: two successive runs credit every rule-bearing goal
// twice. Callers own the decision of when a period has elapsed.
type ProcessDepositsUseCase struct {
	goals *store.GoalStore
}

// NewProcessDepositsUseCase creates a new ProcessDepositsUseCase instance.
func NewProcessDepositsUseCase(goals *store.GoalStore) *ProcessDepositsUseCase {
	return &ProcessDepositsUseCase{goals: goals}
}

// Execute applies one contribution cycle.
func (uc *ProcessDepositsUseCase) Execute(ctx context.Context) (*ProcessDepositsOutput, error) {
	credited, err := uc.goals.ProcessAutomaticDeposits(ctx)

	persisted := true
	if err != nil {
		if !errors.Is(err, domainerror.ErrSnapshotSave) {
			return nil, err
		}
		persisted = false
	}

	return &ProcessDepositsOutput{Credited: credited, Persisted: persisted}, nil
}
