// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalKind distinguishes how a savings goal is funded.
type GoalKind string

const (
	// GoalKindOneTime marks a goal funded only by manual deposits.
	GoalKindOneTime GoalKind = "one-time"
	// GoalKindPeriodic marks a goal additionally funded by a recurring
	// contribution rule.
	GoalKindPeriodic GoalKind = "periodic"
)

// GoalPeriod represents the declared cadence of a periodic goal.
type GoalPeriod string

const (
	GoalPeriodWeekly  GoalPeriod = "weekly"
	GoalPeriodMonthly GoalPeriod = "monthly"
	GoalPeriodYearly  GoalPeriod = "yearly"
)

// Goal represents a single savings target in the Virtual Piggy Bank.
//
// PercentageOfIncome and FixedAmount together encode the contribution rule
// of a periodic goal; at most one of them is non-zero at any time.
type Goal struct {
	ID                 uuid.UUID
	Name               string
	GoalAmount         float64
	CurrentAmount      float64
	Kind               GoalKind
	Period             GoalPeriod
	PercentageOfIncome float64
	FixedAmount        float64
	Color              string
	Archived           bool
	CreatedAt          time.Time
}

// NewGoal creates a new Goal entity with a fresh ID and creation timestamp.
func NewGoal(name string, goalAmount, currentAmount float64, kind GoalKind, period GoalPeriod, color string, now time.Time) *Goal {
	return &Goal{
		ID:            uuid.New(),
		Name:          name,
		GoalAmount:    goalAmount,
		CurrentAmount: currentAmount,
		Kind:          kind,
		Period:        period,
		Color:         color,
		CreatedAt:     now.UTC(),
	}
}

// Completed reports whether the goal has been met. This is a derived
// predicate, never a stored state: overshooting a goal does not archive it.
func (g *Goal) Completed() bool {
	return g.CurrentAmount >= g.GoalAmount
}

// Remaining returns the amount still missing, never negative.
func (g *Goal) Remaining() float64 {
	if g.Completed() {
		return 0
	}
	return g.GoalAmount - g.CurrentAmount
}

// Progress returns completion as a percentage of the goal amount.
func (g *Goal) Progress() float64 {
	if g.GoalAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.GoalAmount * 100
}

// HasContributionRule reports whether a periodic contribution rule is set.
func (g *Goal) HasContributionRule() bool {
	return g.PercentageOfIncome > 0 || g.FixedAmount > 0
}

// Clone returns an independent copy of the goal.
func (g *Goal) Clone() *Goal {
	clone := *g
	return &clone
}

// IsValidGoalKind validates the goal kind.
func IsValidGoalKind(kind GoalKind) bool {
	return kind == GoalKindOneTime || kind == GoalKindPeriodic
}

// IsValidGoalPeriod validates the goal period.
func IsValidGoalPeriod(period GoalPeriod) bool {
	return period == GoalPeriodWeekly ||
		period == GoalPeriodMonthly ||
		period == GoalPeriodYearly
}
