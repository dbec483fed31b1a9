// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"math"

	usecase "github.com/piggybank/backend/internal/application/usecase/forecast"
)

// GoalAnalysisResponse represents one goal's projection. DaysToGoal is null
// when no forecast is possible (zero saving rate on an unmet goal).
type GoalAnalysisResponse struct {
	GoalID            string   `json:"goal_id"`
	Name              string   `json:"name"`
	CurrentAmount     float64  `json:"current_amount"`
	GoalAmount        float64  `json:"goal_amount"`
	PercentComplete   float64  `json:"percent_complete"`
	MonthlySavingRate float64  `json:"monthly_saving_rate"`
	DaysToGoal        *int64   `json:"days_to_goal"`
	MonthsToGoal      *int64   `json:"months_to_goal"`
	RemainderDays     *int64   `json:"remainder_days"`
	Completed         bool     `json:"completed"`
	Recommendations   []string `json:"recommendations"`
}

// AnalysisResponse represents the full savings analysis.
type AnalysisResponse struct {
	Analyses      []GoalAnalysisResponse `json:"analyses"`
	MonthlyIncome float64                `json:"monthly_income"`
}

// ToAnalysisResponse converts the use-case output to its DTO.
func ToAnalysisResponse(output *usecase.AnalyzeGoalsOutput) AnalysisResponse {
	analyses := make([]GoalAnalysisResponse, len(output.Analyses))
	for i, a := range output.Analyses {
		response := GoalAnalysisResponse{
			GoalID:            a.Goal.ID.String(),
			Name:              a.Goal.Name,
			CurrentAmount:     a.Goal.CurrentAmount,
			GoalAmount:        a.Goal.GoalAmount,
			PercentComplete:   a.Goal.Progress(),
			MonthlySavingRate: a.Projection.MonthlySavingRate,
			Completed:         a.Projection.Completed,
			Recommendations:   a.Projection.Recommendations,
		}

		if !math.IsInf(a.Projection.DaysToGoal, 1) {
			days := int64(a.Projection.DaysToGoal)
			months := days / 30
			remainder := days % 30
			response.DaysToGoal = &days
			response.MonthsToGoal = &months
			response.RemainderDays = &remainder
		}

		analyses[i] = response
	}

	return AnalysisResponse{
		Analyses:      analyses,
		MonthlyIncome: output.MonthlyIncome,
	}
}
