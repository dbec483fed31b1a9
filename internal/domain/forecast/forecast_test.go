package forecast

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/piggybank/backend/internal/domain/entity"
)

// fixedRandom always returns the same index.
type fixedRandom struct {
	value int
}

func (r fixedRandom) Intn(n int) int {
	if r.value >= n {
		return n - 1
	}
	return r.value
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMonthlySavingRate(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		goal          *entity.Goal
		monthlyIncome float64
		expected      float64
	}{
		{
			name: "percentage of income",
			goal: &entity.Goal{
				Kind:               entity.GoalKindPeriodic,
				Period:             entity.GoalPeriodMonthly,
				PercentageOfIncome: 10,
				CreatedAt:          now.AddDate(0, -6, 0),
			},
			monthlyIncome: 3000,
			expected:      300,
		},
		{
			name: "weekly fixed amount normalized to a month",
			goal: &entity.Goal{
				Kind:        entity.GoalKindPeriodic,
				Period:      entity.GoalPeriodWeekly,
				FixedAmount: 100,
				CreatedAt:   now.AddDate(0, -6, 0),
			},
			monthlyIncome: 3000,
			expected:      433,
		},
		{
			name: "monthly fixed amount passes through",
			goal: &entity.Goal{
				Kind:        entity.GoalKindPeriodic,
				Period:      entity.GoalPeriodMonthly,
				FixedAmount: 100,
				CreatedAt:   now.AddDate(0, -6, 0),
			},
			monthlyIncome: 3000,
			expected:      100,
		},
		{
			name: "yearly fixed amount divided by twelve",
			goal: &entity.Goal{
				Kind:        entity.GoalKindPeriodic,
				Period:      entity.GoalPeriodYearly,
				FixedAmount: 1200,
				CreatedAt:   now.AddDate(0, -6, 0),
			},
			monthlyIncome: 3000,
			expected:      100,
		},
		{
			name: "fresh funded goal falls back to the funded amount",
			goal: &entity.Goal{
				Kind:          entity.GoalKindOneTime,
				CurrentAmount: 250,
				CreatedAt:     now.AddDate(0, 0, -2),
			},
			monthlyIncome: 3000,
			expected:      250,
		},
		{
			name: "fresh unfunded goal is floored at one",
			goal: &entity.Goal{
				Kind:      entity.GoalKindOneTime,
				CreatedAt: now.AddDate(0, 0, -2),
			},
			monthlyIncome: 3000,
			expected:      1,
		},
		{
			name: "historical rate from deposits since creation",
			goal: &entity.Goal{
				Kind:          entity.GoalKindOneTime,
				CurrentAmount: 600,
				CreatedAt:     now.AddDate(0, 0, -60),
			},
			monthlyIncome: 3000,
			expected:      300,
		},
		{
			name: "periodic goal without a rule uses history",
			goal: &entity.Goal{
				Kind:          entity.GoalKindPeriodic,
				Period:        entity.GoalPeriodMonthly,
				CurrentAmount: 600,
				CreatedAt:     now.AddDate(0, 0, -60),
			},
			monthlyIncome: 3000,
			expected:      300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlySavingRate(tt.goal, tt.monthlyIncome, now)
			if !almostEqual(got, tt.expected) {
				t.Errorf("expected %.4f, got %.4f", tt.expected, got)
			}
		})
	}
}

func TestProject(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	random := fixedRandom{value: 0}

	t.Run("monthly rule projects days to goal", func(t *testing.T) {
		goal := &entity.Goal{
			Kind:          entity.GoalKindPeriodic,
			Period:        entity.GoalPeriodMonthly,
			FixedAmount:   100,
			GoalAmount:    1000,
			CurrentAmount: 500,
			CreatedAt:     now.AddDate(0, -6, 0),
		}

		projection := Project(goal, 3000, now, random)

		if projection.Completed {
			t.Error("expected goal not to be completed")
		}
		if projection.DaysToGoal != 150 {
			t.Errorf("expected 150 days to goal, got %.2f", projection.DaysToGoal)
		}
		if !almostEqual(projection.MonthlySavingRate, 100) {
			t.Errorf("expected rate 100, got %.4f", projection.MonthlySavingRate)
		}
	})

	t.Run("completed goal has zero days and two recommendations", func(t *testing.T) {
		goal := &entity.Goal{
			Kind:          entity.GoalKindOneTime,
			GoalAmount:    1000,
			CurrentAmount: 1200,
			CreatedAt:     now.AddDate(0, -6, 0),
		}

		projection := Project(goal, 3000, now, random)

		if !projection.Completed {
			t.Error("expected goal to be completed")
		}
		if projection.DaysToGoal != 0 {
			t.Errorf("expected 0 days to goal, got %.2f", projection.DaysToGoal)
		}
		if len(projection.Recommendations) != 2 {
			t.Fatalf("expected exactly 2 recommendations, got %d", len(projection.Recommendations))
		}
		if projection.Recommendations[0] != congratsMessages[0] {
			t.Errorf("expected pinned congratulation, got %q", projection.Recommendations[0])
		}
		if projection.Recommendations[1] != surplusSuggestion {
			t.Errorf("expected surplus suggestion, got %q", projection.Recommendations[1])
		}
	})

	t.Run("zero rate yields an infinite horizon", func(t *testing.T) {
		goal := &entity.Goal{
			Kind:       entity.GoalKindOneTime,
			GoalAmount: 1000,
			CreatedAt:  now.AddDate(0, -6, 0),
		}

		projection := Project(goal, 3000, now, random)

		if !math.IsInf(projection.DaysToGoal, 1) {
			t.Errorf("expected +Inf days to goal, got %.2f", projection.DaysToGoal)
		}
	})

	t.Run("projection rounds partial days up", func(t *testing.T) {
		goal := &entity.Goal{
			Kind:          entity.GoalKindPeriodic,
			Period:        entity.GoalPeriodMonthly,
			FixedAmount:   300,
			GoalAmount:    1000,
			CurrentAmount: 499,
			CreatedAt:     now.AddDate(0, -6, 0),
		}

		// 501 remaining at 300/month is 50.1 days, reported as 51.
		projection := Project(goal, 3000, now, random)
		if projection.DaysToGoal != 51 {
			t.Errorf("expected 51 days, got %.2f", projection.DaysToGoal)
		}
	})
}

func TestRecommendations(t *testing.T) {
	random := fixedRandom{value: 2}

	t.Run("each congratulation can be selected", func(t *testing.T) {
		goal := &entity.Goal{GoalAmount: 100, CurrentAmount: 100}
		for i := range congratsMessages {
			recs := Recommendations(goal, 50, 1000, true, fixedRandom{value: i})
			if recs[0] != congratsMessages[i] {
				t.Errorf("index %d: expected %q, got %q", i, congratsMessages[i], recs[0])
			}
		}
	})

	t.Run("low rate triggers the contribution nudge", func(t *testing.T) {
		goal := &entity.Goal{GoalAmount: 1000, CurrentAmount: 100}
		recs := Recommendations(goal, 5, 1000, false, random)

		if recs[0] != "Consider increasing your monthly contribution to reach your goal faster." {
			t.Errorf("expected low-rate nudge first, got %q", recs[0])
		}
	})

	t.Run("more than a year out suggests a top-up", func(t *testing.T) {
		goal := &entity.Goal{GoalAmount: 10000, CurrentAmount: 1000}
		recs := Recommendations(goal, 100, 1000, false, random)

		found := false
		for _, rec := range recs {
			if rec == "To reach your goal within a year, consider saving an additional $650.00 monthly." {
				found = true
			}
		}
		if !found {
			t.Errorf("expected yearly top-up suggestion, got %v", recs)
		}
	})

	t.Run("zero rate skips the yearly top-up rule", func(t *testing.T) {
		goal := &entity.Goal{GoalAmount: 10000, CurrentAmount: 1000}
		recs := Recommendations(goal, 0, 1000, false, random)

		for _, rec := range recs {
			if strings.HasPrefix(rec, "To reach your goal within a year") {
				t.Errorf("did not expect yearly top-up with zero rate, got %q", rec)
			}
		}
	})

	t.Run("ninety percent funded gets the final push", func(t *testing.T) {
		goal := &entity.Goal{GoalAmount: 1000, CurrentAmount: 950}
		recs := Recommendations(goal, 100, 1000, false, random)

		found := false
		for _, rec := range recs {
			if rec == "You're very close to your goal! Consider a final push to complete it." {
				found = true
			}
		}
		if !found {
			t.Errorf("expected final-push suggestion, got %v", recs)
		}
	})

	t.Run("sparse advice is padded with generic suggestions", func(t *testing.T) {
		goal := &entity.Goal{GoalAmount: 1000, CurrentAmount: 500}
		recs := Recommendations(goal, 200, 1000, false, random)

		if len(recs) != 2 {
			t.Fatalf("expected the two generic suggestions, got %d entries: %v", len(recs), recs)
		}
		if recs[0] != "Setting up automatic transfers can help maintain consistent savings." {
			t.Errorf("unexpected first filler: %q", recs[0])
		}
		if recs[1] != "Review your budget for areas where you might reduce spending to accelerate savings." {
			t.Errorf("unexpected second filler: %q", recs[1])
		}
	})
}
