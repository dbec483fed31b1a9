// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/piggybank/backend/internal/application/store"

// CreditedGoalResponse reports one automatic contribution applied to a goal.
type CreditedGoalResponse struct {
	GoalID        string  `json:"goal_id"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	CurrentAmount float64 `json:"current_amount"`
	Completed     bool    `json:"completed"`
}

// ProcessDepositsResponse represents the result of one auto-deposit batch.
type ProcessDepositsResponse struct {
	Credited  []CreditedGoalResponse `json:"credited"`
	Persisted bool                   `json:"persisted"`
}

// ToProcessDepositsResponse converts the batch result to its DTO.
func ToProcessDepositsResponse(credited []store.CreditedGoal, persisted bool) ProcessDepositsResponse {
	responses := make([]CreditedGoalResponse, len(credited))
	for i, c := range credited {
		responses[i] = CreditedGoalResponse{
			GoalID:        c.Goal.ID.String(),
			Name:          c.Goal.Name,
			Amount:        c.Amount,
			CurrentAmount: c.Goal.CurrentAmount,
			Completed:     c.Goal.Completed(),
		}
	}
	return ProcessDepositsResponse{
		Credited:  responses,
		Persisted: persisted,
	}
}
