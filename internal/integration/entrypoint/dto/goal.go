// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/piggybank/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name               string        `json:"name" binding:"required"`
	GoalAmount         NumericString `json:"goal_amount" binding:"required"`
	CurrentAmount      NumericString `json:"current_amount,omitempty"`
	Kind               *string       `json:"kind,omitempty" binding:"omitempty,oneof=one-time periodic"`
	Period             *string       `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	PercentageOfIncome NumericString `json:"percentage_of_income,omitempty"`
	FixedAmount        NumericString `json:"fixed_amount,omitempty"`
	Color              string        `json:"color,omitempty"`
}

// UpdateGoalRequest represents the request body for goal editing.
type UpdateGoalRequest struct {
	Name               string        `json:"name" binding:"required"`
	GoalAmount         NumericString `json:"goal_amount" binding:"required"`
	Kind               *string       `json:"kind,omitempty" binding:"omitempty,oneof=one-time periodic"`
	Period             *string       `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
	PercentageOfIncome NumericString `json:"percentage_of_income,omitempty"`
	FixedAmount        NumericString `json:"fixed_amount,omitempty"`
}

// DepositRequest represents the request body for a manual deposit.
type DepositRequest struct {
	Amount NumericString `json:"amount" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	GoalAmount         float64   `json:"goal_amount"`
	CurrentAmount      float64   `json:"current_amount"`
	Kind               string    `json:"kind"`
	Period             string    `json:"period"`
	PercentageOfIncome float64   `json:"percentage_of_income"`
	FixedAmount        float64   `json:"fixed_amount"`
	Color              string    `json:"color"`
	Archived           bool      `json:"archived"`
	Completed          bool      `json:"completed"`
	Progress           float64   `json:"progress"`
	CreatedAt          time.Time `json:"created_at"`
	Persisted          *bool     `json:"persisted,omitempty"`
}

// GoalListResponse represents the response for listing the ledger.
type GoalListResponse struct {
	Goals         []GoalResponse `json:"goals"`
	MonthlyIncome float64        `json:"monthly_income"`
}

// DepositResponse represents the response to a deposit.
type DepositResponse struct {
	Goal      GoalResponse `json:"goal"`
	Completed bool         `json:"completed"`
	Persisted bool         `json:"persisted"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:                 g.ID.String(),
		Name:               g.Name,
		GoalAmount:         g.GoalAmount,
		CurrentAmount:      g.CurrentAmount,
		Kind:               string(g.Kind),
		Period:             string(g.Period),
		PercentageOfIncome: g.PercentageOfIncome,
		FixedAmount:        g.FixedAmount,
		Color:              g.Color,
		Archived:           g.Archived,
		Completed:          g.Completed(),
		Progress:           g.Progress(),
		CreatedAt:          g.CreatedAt,
	}
}

// ToGoalListResponse converts a goal slice plus income to the list DTO.
func ToGoalListResponse(goals []*entity.Goal, monthlyIncome float64) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals:         responses,
		MonthlyIncome: monthlyIncome,
	}
}
