// Package contribution computes recurring deposit amounts for periodic goals.
package contribution

import "github.com/piggybank/backend/internal/domain/entity"

// DueAmount returns the amount a periodic goal is owed for one contribution
// cycle. A percentage rule takes precedence over a fixed amount. The declared
// period does not scale the fixed amount here; it documents the cadence the
// user intends to trigger the batch at.
//
// Archived and one-time goals are never due anything.
func DueAmount(goal *entity.Goal, monthlyIncome float64) float64 {
	if goal.Kind != entity.GoalKindPeriodic || goal.Archived {
		return 0
	}

	if goal.PercentageOfIncome > 0 {
		return monthlyIncome * goal.PercentageOfIncome / 100
	}

	if goal.FixedAmount > 0 {
		return goal.FixedAmount
	}

	return 0
}
