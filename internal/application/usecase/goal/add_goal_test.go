package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/piggybank/backend/internal/application/store"
	"github.com/piggybank/backend/internal/domain/entity"
	domainerror "github.com/piggybank/backend/internal/domain/error"
)

type stubRepo struct {
	failErr error
}

func (r *stubRepo) Load(_ context.Context) (*entity.Ledger, error) {
	return entity.NewLedger(), nil
}

func (r *stubRepo) Save(_ context.Context, _ *entity.Ledger) error {
	return r.failErr
}

type stubClock struct{}

func (stubClock) Now() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

type stubRandom struct{}

func (stubRandom) Intn(n int) int { return 0 }

func newStore(repo *stubRepo) *store.GoalStore {
	return store.NewGoalStore(repo, stubClock{}, stubRandom{})
}

func TestAddGoalUseCase(t *testing.T) {
	t.Run("creates a goal from text fields", func(t *testing.T) {
		uc := NewAddGoalUseCase(newStore(&stubRepo{}))

		output, err := uc.Execute(context.Background(), AddGoalInput{
			Name:          "Vacation",
			GoalAmount:    "1200.50",
			CurrentAmount: "100",
			Kind:          "periodic",
			Period:        "weekly",
			FixedAmount:   "25",
			Color:         "#123456",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.GoalAmount != 1200.50 {
			t.Errorf("expected goal amount 1200.50, got %.2f", output.Goal.GoalAmount)
		}
		if output.Goal.CurrentAmount != 100 {
			t.Errorf("expected seed amount 100, got %.2f", output.Goal.CurrentAmount)
		}
		if output.Goal.Kind != entity.GoalKindPeriodic || output.Goal.Period != entity.GoalPeriodWeekly {
			t.Errorf("unexpected kind/period: %s/%s", output.Goal.Kind, output.Goal.Period)
		}
		if output.Goal.FixedAmount != 25 {
			t.Errorf("expected fixed amount 25, got %.2f", output.Goal.FixedAmount)
		}
		if !output.Persisted {
			t.Error("expected persisted=true")
		}
	})

	t.Run("omitted kind and period get creation defaults", func(t *testing.T) {
		uc := NewAddGoalUseCase(newStore(&stubRepo{}))

		output, err := uc.Execute(context.Background(), AddGoalInput{
			Name:       "Defaults",
			GoalAmount: "500",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Kind != entity.GoalKindOneTime {
			t.Errorf("expected one-time default, got %s", output.Goal.Kind)
		}
		if output.Goal.Period != entity.GoalPeriodMonthly {
			t.Errorf("expected monthly default, got %s", output.Goal.Period)
		}
	})

	t.Run("unparseable goal amount is rejected", func(t *testing.T) {
		uc := NewAddGoalUseCase(newStore(&stubRepo{}))

		_, err := uc.Execute(context.Background(), AddGoalInput{
			Name:       "Broken",
			GoalAmount: "lots",
		})
		if !errors.Is(err, domainerror.ErrInvalidInput) {
			t.Errorf("expected invalid input, got %v", err)
		}
	})

	t.Run("garbage optional fields default to zero", func(t *testing.T) {
		uc := NewAddGoalUseCase(newStore(&stubRepo{}))

		output, err := uc.Execute(context.Background(), AddGoalInput{
			Name:               "Tolerant",
			GoalAmount:         "500",
			CurrentAmount:      "a little",
			PercentageOfIncome: "-3",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.CurrentAmount != 0 || output.Goal.PercentageOfIncome != 0 {
			t.Errorf("expected zeroed optional fields, got %.2f / %.2f",
				output.Goal.CurrentAmount, output.Goal.PercentageOfIncome)
		}
	})

	t.Run("failed snapshot save still returns the goal", func(t *testing.T) {
		uc := NewAddGoalUseCase(newStore(&stubRepo{failErr: errors.New("disk full")}))

		output, err := uc.Execute(context.Background(), AddGoalInput{
			Name:       "Unsaved",
			GoalAmount: "500",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Persisted {
			t.Error("expected persisted=false")
		}
		if output.Goal == nil {
			t.Error("expected the created goal")
		}
	})
}

func TestDepositUseCase(t *testing.T) {
	setup := func(t *testing.T) (*DepositUseCase, uuid.UUID) {
		t.Helper()
		s := newStore(&stubRepo{})
		add := NewAddGoalUseCase(s)
		output, err := add.Execute(context.Background(), AddGoalInput{Name: "Target", GoalAmount: "1000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return NewDepositUseCase(s), output.Goal.ID
	}

	t.Run("deposits a parsed amount", func(t *testing.T) {
		uc, id := setup(t)

		output, err := uc.Execute(context.Background(), DepositInput{GoalID: id, Amount: "250.25"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.CurrentAmount != 250.25 {
			t.Errorf("expected 250.25, got %.2f", output.Goal.CurrentAmount)
		}
		if output.Completed {
			t.Error("expected not completed")
		}
	})

	t.Run("reports completion when the goal is met", func(t *testing.T) {
		uc, id := setup(t)

		output, err := uc.Execute(context.Background(), DepositInput{GoalID: id, Amount: "1000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Completed {
			t.Error("expected completed")
		}
	})

	t.Run("rejects bad amounts", func(t *testing.T) {
		uc, id := setup(t)

		for name, raw := range map[string]string{
			"empty":    "",
			"garbage":  "much",
			"zero":     "0",
			"negative": "-5",
			"infinity": "Inf",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), DepositInput{GoalID: id, Amount: raw})
				if !errors.Is(err, domainerror.ErrInvalidAmount) {
					t.Errorf("expected invalid amount error, got %v", err)
				}
			})
		}
	})

	t.Run("unknown goal is not found", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.Execute(context.Background(), DepositInput{GoalID: uuid.New(), Amount: "10"})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected goal not found, got %v", err)
		}
	})
}
