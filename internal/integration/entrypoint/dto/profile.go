// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/piggybank/backend/internal/domain/entity"

// ProfileGoalResponse is the compact per-goal progress shown on the profile.
type ProfileGoalResponse struct {
	Name          string  `json:"name"`
	CurrentAmount float64 `json:"current_amount"`
	GoalAmount    float64 `json:"goal_amount"`
	Percentage    int     `json:"percentage"`
}

// ProfileResponse represents the profile view: a display name from the
// identity collaborator plus goal progress.
type ProfileResponse struct {
	DisplayName string                `json:"display_name"`
	Goals       []ProfileGoalResponse `json:"goals"`
}

// ToProfileResponse builds the profile DTO.
func ToProfileResponse(displayName string, goals []*entity.Goal) ProfileResponse {
	responses := make([]ProfileGoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ProfileGoalResponse{
			Name:          g.Name,
			CurrentAmount: g.CurrentAmount,
			GoalAmount:    g.GoalAmount,
			Percentage:    int(g.Progress()),
		}
	}
	return ProfileResponse{
		DisplayName: displayName,
		Goals:       responses,
	}
}
