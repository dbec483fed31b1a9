package contribution

import (
	"testing"
	"time"

	"github.com/piggybank/backend/internal/domain/entity"
)

func TestDueAmount(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		goal          *entity.Goal
		monthlyIncome float64
		expected      float64
	}{
		{
			name: "percentage rule",
			goal: &entity.Goal{
				Kind:               entity.GoalKindPeriodic,
				Period:             entity.GoalPeriodMonthly,
				PercentageOfIncome: 10,
				CreatedAt:          now,
			},
			monthlyIncome: 1000,
			expected:      100,
		},
		{
			name: "fixed amount rule",
			goal: &entity.Goal{
				Kind:        entity.GoalKindPeriodic,
				Period:      entity.GoalPeriodMonthly,
				FixedAmount: 50,
				CreatedAt:   now,
			},
			monthlyIncome: 1000,
			expected:      50,
		},
		{
			name: "percentage wins over fixed amount",
			goal: &entity.Goal{
				Kind:               entity.GoalKindPeriodic,
				Period:             entity.GoalPeriodMonthly,
				PercentageOfIncome: 5,
				FixedAmount:        999,
				CreatedAt:          now,
			},
			monthlyIncome: 2000,
			expected:      100,
		},
		{
			name: "period does not scale the fixed amount",
			goal: &entity.Goal{
				Kind:        entity.GoalKindPeriodic,
				Period:      entity.GoalPeriodWeekly,
				FixedAmount: 25,
				CreatedAt:   now,
			},
			monthlyIncome: 1000,
			expected:      25,
		},
		{
			name: "one-time goal is never due",
			goal: &entity.Goal{
				Kind:        entity.GoalKindOneTime,
				Period:      entity.GoalPeriodMonthly,
				FixedAmount: 50,
				CreatedAt:   now,
			},
			monthlyIncome: 1000,
			expected:      0,
		},
		{
			name: "archived goal is never due",
			goal: &entity.Goal{
				Kind:               entity.GoalKindPeriodic,
				Period:             entity.GoalPeriodMonthly,
				PercentageOfIncome: 10,
				Archived:           true,
				CreatedAt:          now,
			},
			monthlyIncome: 1000,
			expected:      0,
		},
		{
			name: "periodic goal without a rule",
			goal: &entity.Goal{
				Kind:      entity.GoalKindPeriodic,
				Period:    entity.GoalPeriodMonthly,
				CreatedAt: now,
			},
			monthlyIncome: 1000,
			expected:      0,
		},
		{
			name: "percentage rule with zero income",
			goal: &entity.Goal{
				Kind:               entity.GoalKindPeriodic,
				Period:             entity.GoalPeriodMonthly,
				PercentageOfIncome: 10,
				CreatedAt:          now,
			},
			monthlyIncome: 0,
			expected:      0,
		},
		{
			name: "completed goal keeps accruing",
			goal: &entity.Goal{
				Kind:          entity.GoalKindPeriodic,
				Period:        entity.GoalPeriodMonthly,
				FixedAmount:   50,
				GoalAmount:    100,
				CurrentAmount: 150,
				CreatedAt:     now,
			},
			monthlyIncome: 1000,
			expected:      50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DueAmount(tt.goal, tt.monthlyIncome)
			if got != tt.expected {
				t.Errorf("expected %.2f, got %.2f", tt.expected, got)
			}
		})
	}
}
