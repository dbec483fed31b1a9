// Package forecast derives saving rates, completion projections and textual
// recommendations from a goal snapshot. Everything here is deterministic
// arithmetic over (goal, monthlyIncome, now); the only variability is the
// injected random source used to pick a congratulatory message.
package forecast

import (
	"fmt"
	"math"
	"time"

	"github.com/piggybank/backend/internal/domain/entity"
)

const (
	// avgWeeksPerMonth normalizes weekly contributions to a monthly figure.
	avgWeeksPerMonth = 4.33

	// daysPerMonth converts a monthly rate into a day count.
	daysPerMonth = 30

	// freshGoalThresholdMonths is the history window below which a goal is
	// considered too young for a historical rate estimate.
	freshGoalThresholdMonths = 0.25

	// minElapsedMonths floors the elapsed time so that goals funded moments
	// after creation do not produce unbounded rates.
	minElapsedMonths = 0.1
)

// RandomSource supplies the index selection for congratulatory messages.
// *math/rand.Rand satisfies it; tests pin it with a fixed seed.
type RandomSource interface {
	Intn(n int) int
}

// Projection is the forward-looking analysis of a single goal.
type Projection struct {
	DaysToGoal        float64 // math.Inf(1) when no forecast is possible
	Completed         bool
	MonthlySavingRate float64
	Recommendations   []string
}

// MonthlySavingRate returns the monthly-equivalent funding velocity of a goal.
//
// Periodic goals with a rule are normalized from their declared cadence.
// One-time goals, and periodic goals without a configured rule, are estimated
// from deposit history since creation.
func MonthlySavingRate(goal *entity.Goal, monthlyIncome float64, now time.Time) float64 {
	if goal.Kind == entity.GoalKindPeriodic {
		if goal.PercentageOfIncome > 0 {
			return monthlyIncome * goal.PercentageOfIncome / 100
		}
		if goal.FixedAmount > 0 {
			switch goal.Period {
			case entity.GoalPeriodWeekly:
				return goal.FixedAmount * avgWeeksPerMonth
			case entity.GoalPeriodMonthly:
				return goal.FixedAmount
			case entity.GoalPeriodYearly:
				return goal.FixedAmount / 12
			}
		}
	}

	elapsedMonths := now.Sub(goal.CreatedAt).Hours() / (daysPerMonth * 24)

	// A goal created within the last ~7.5 days has too little history to
	// divide by; fall back to the funded amount, floored at 1.
	if elapsedMonths < freshGoalThresholdMonths {
		if goal.CurrentAmount > 0 {
			return goal.CurrentAmount
		}
		return 1
	}

	return goal.CurrentAmount / math.Max(elapsedMonths, minElapsedMonths)
}

// Project computes the full projection for a goal.
func Project(goal *entity.Goal, monthlyIncome float64, now time.Time, random RandomSource) Projection {
	rate := MonthlySavingRate(goal, monthlyIncome, now)
	completed := goal.Completed()

	daysToGoal := 0.0
	if !completed {
		if rate <= 0 {
			daysToGoal = math.Inf(1)
		} else {
			daysToGoal = math.Ceil(goal.Remaining() / rate * daysPerMonth)
		}
	}

	return Projection{
		DaysToGoal:        daysToGoal,
		Completed:         completed,
		MonthlySavingRate: rate,
		Recommendations:   Recommendations(goal, rate, monthlyIncome, completed, random),
	}
}

var congratsMessages = []string{
	"🎉 BOOM! You've crushed your savings goal! Financial rockstar status: ACHIEVED!",
	"💰 Holy savings, Batman! You've blown past your goal! Time to do a victory dance!",
	"🚀 Look at you go! You've zoomed past your target! Saving game: LEGENDARY!",
	"✨ You're absolutely CRUSHING IT! Goal surpassed and looking fabulous doing it!",
	"🏆 Mission accomplished and then some! Your future self is high-fiving you right now!",
}

const surplusSuggestion = "Consider setting an even bigger goal or treating yourself to something nice with a portion of the extra savings!"

// Recommendations returns the ordered advice list for a goal.
//
// A completed goal gets exactly two entries: one randomly selected
// congratulation and the surplus suggestion. Otherwise the rules accumulate
// in a fixed order, padded with two generic suggestions whenever fewer than
// three rule-based entries matched.
func Recommendations(goal *entity.Goal, monthlySavingRate, monthlyIncome float64, completed bool, random RandomSource) []string {
	if completed {
		return []string{
			congratsMessages[random.Intn(len(congratsMessages))],
			surplusSuggestion,
		}
	}

	recommendations := []string{}
	remaining := goal.GoalAmount - goal.CurrentAmount

	if monthlySavingRate < monthlyIncome*0.01 {
		recommendations = append(recommendations,
			"Consider increasing your monthly contribution to reach your goal faster.")
	}

	// More than a year out at the current rate. A zero rate means the rule
	// does not apply, not a division error.
	if monthlySavingRate > 0 && remaining/monthlySavingRate > 12 {
		suggestedIncrease := remaining/12 - monthlySavingRate
		recommendations = append(recommendations, fmt.Sprintf(
			"To reach your goal within a year, consider saving an additional $%.2f monthly.",
			suggestedIncrease))
	}

	if goal.GoalAmount > 0 && goal.CurrentAmount/goal.GoalAmount > 0.9 {
		recommendations = append(recommendations,
			"You're very close to your goal! Consider a final push to complete it.")
	}

	if len(recommendations) <= 2 {
		recommendations = append(recommendations,
			"Setting up automatic transfers can help maintain consistent savings.",
			"Review your budget for areas where you might reduce spending to accelerate savings.")
	}

	return recommendations
}
