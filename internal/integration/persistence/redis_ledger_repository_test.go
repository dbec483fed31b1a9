package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/piggybank/backend/internal/domain/entity"
)

func newRedisRepoForTest(t *testing.T) (*redisLedgerRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return &redisLedgerRepository{client: client}, mr
}

func TestRedisLedgerRepository_LoadEmpty(t *testing.T) {
	repo, _ := newRedisRepoForTest(t)

	ledger, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ledger.Goals) != 0 {
		t.Errorf("expected no goals, got %d", len(ledger.Goals))
	}
	if ledger.MonthlyIncome != 0 {
		t.Errorf("expected zero income, got %.2f", ledger.MonthlyIncome)
	}
}

func TestRedisLedgerRepository_RoundTrip(t *testing.T) {
	repo, _ := newRedisRepoForTest(t)
	ctx := context.Background()

	createdAt := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)
	ledger := entity.NewLedger()
	ledger.MonthlyIncome = 3200.50
	ledger.Goals = []*entity.Goal{
		{
			ID:            uuid.New(),
			Name:          "Emergency Fund",
			GoalAmount:    5000,
			CurrentAmount: 1250.75,
			Kind:          entity.GoalKindOneTime,
			Period:        entity.GoalPeriodMonthly,
			Color:         "#336699",
			CreatedAt:     createdAt,
		},
		{
			ID:                 uuid.New(),
			Name:               "Holiday",
			GoalAmount:         1500,
			Kind:               entity.GoalKindPeriodic,
			Period:             entity.GoalPeriodWeekly,
			PercentageOfIncome: 5,
			Color:              "#993366",
			Archived:           true,
			CreatedAt:          createdAt,
		},
	}

	if err := repo.Save(ctx, ledger); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	if loaded.MonthlyIncome != 3200.50 {
		t.Errorf("expected income 3200.50, got %.2f", loaded.MonthlyIncome)
	}
	if len(loaded.Goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(loaded.Goals))
	}

	first := loaded.Goals[0]
	if first.ID != ledger.Goals[0].ID {
		t.Error("expected goal ID to survive the round trip")
	}
	if first.Name != "Emergency Fund" || first.CurrentAmount != 1250.75 {
		t.Errorf("unexpected first goal: %+v", first)
	}
	if !first.CreatedAt.Equal(createdAt) {
		t.Errorf("expected creation time %v, got %v", createdAt, first.CreatedAt)
	}

	second := loaded.Goals[1]
	if second.Kind != entity.GoalKindPeriodic || second.PercentageOfIncome != 5 {
		t.Errorf("unexpected second goal: %+v", second)
	}
	if !second.Archived {
		t.Error("expected archived flag to survive")
	}
}

func TestRedisLedgerRepository_MalformedGoals(t *testing.T) {
	repo, mr := newRedisRepoForTest(t)
	mr.Set(goalsKey, "{not json")
	mr.Set(incomeKey, "1500")

	ledger, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ledger.Goals) != 0 {
		t.Errorf("expected malformed goals to degrade to empty, got %d", len(ledger.Goals))
	}
	if ledger.MonthlyIncome != 1500 {
		t.Errorf("expected income 1500, got %.2f", ledger.MonthlyIncome)
	}
}

func TestRedisLedgerRepository_MalformedIncome(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "garbage", value: "abc"},
		{name: "negative", value: "-50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mr := newRedisRepoForTest(t)
			mr.Set(incomeKey, tt.value)

			ledger, err := repo.Load(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ledger.MonthlyIncome != 0 {
				t.Errorf("expected income 0, got %.2f", ledger.MonthlyIncome)
			}
		})
	}
}

func TestRedisLedgerRepository_SaveOverwrites(t *testing.T) {
	repo, _ := newRedisRepoForTest(t)
	ctx := context.Background()

	ledger := entity.NewLedger()
	ledger.Goals = []*entity.Goal{{ID: uuid.New(), Name: "First", GoalAmount: 100, Kind: entity.GoalKindOneTime, Period: entity.GoalPeriodMonthly, CreatedAt: time.Now().UTC()}}
	if err := repo.Save(ctx, ledger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ledger.Goals = nil
	ledger.MonthlyIncome = 10
	if err := repo.Save(ctx, ledger); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded.Goals) != 0 {
		t.Errorf("expected the snapshot to be replaced, got %d goals", len(loaded.Goals))
	}
	if loaded.MonthlyIncome != 10 {
		t.Errorf("expected income 10, got %.2f", loaded.MonthlyIncome)
	}
}
