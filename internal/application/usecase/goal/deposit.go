// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/domain/entity"
	domainerror "github.com/piggybank/backend/internal/domain/error"
)

// DepositInput represents the input for a manual deposit.
type DepositInput struct {
	GoalID uuid.UUID
	Amount string
}

// DepositOutput represents the output of a deposit. Completed is purely
// informational: reaching or overshooting the goal changes no stored state.
type DepositOutput struct {
	Goal      *entity.Goal
	Completed bool
	Persisted bool
}

// DepositUseCase handles manual deposits into a goal.
type DepositUseCase struct {
	goals *store.GoalStore
}

// NewDepositUseCase creates a new DepositUseCase instance.
func NewDepositUseCase(goals *store.GoalStore) *DepositUseCase {
	return &DepositUseCase{goals: goals}
}

// Execute performs the deposit.
func (uc *DepositUseCase) Execute(ctx context.Context, input DepositInput) (*DepositOutput, error) {
	raw := strings.TrimSpace(input.Amount)
	amount, err := strconv.ParseFloat(raw, 64)
	if raw == "" || err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDeposit,
			"deposit amount must be a positive number",
			domainerror.ErrInvalidAmount,
		)
	}

	deposited, err := uc.goals.Deposit(ctx, input.GoalID, amount)
	if deposited == nil {
		return nil, err
	}

	persisted, err := persistedResult(err)
	if err != nil {
		return nil, err
	}

	return &DepositOutput{
		Goal:      deposited,
		Completed: deposited.Completed(),
		Persisted: persisted,
	}, nil
}
