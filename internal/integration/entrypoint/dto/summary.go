// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/piggybank/backend/internal/application/usecase/summary"

// SummaryResponse represents the ledger-wide totals. Monetary totals are
// rendered as decimal strings to keep their exact two-place form.
type SummaryResponse struct {
	TotalSaved      string  `json:"total_saved"`
	TotalGoalAmount string  `json:"total_goal_amount"`
	ActiveTargets   int     `json:"active_targets"`
	ArchivedTargets int     `json:"archived_targets"`
	MonthlyIncome   float64 `json:"monthly_income"`
}

// ToSummaryResponse converts the use-case output to its DTO.
func ToSummaryResponse(output *summary.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		TotalSaved:      output.TotalSaved.StringFixed(2),
		TotalGoalAmount: output.TotalGoalAmount.StringFixed(2),
		ActiveTargets:   output.ActiveTargets,
		ArchivedTargets: output.ArchivedTargets,
		MonthlyIncome:   output.MonthlyIncome,
	}
}
