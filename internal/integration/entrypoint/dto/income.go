// Package dto defines data transfer objects for API requests and responses.
package dto

// SetIncomeRequest represents the request body for declaring monthly income.
// Negative or unparseable values are coerced to zero, so there is no binding
// constraint beyond presence.
type SetIncomeRequest struct {
	MonthlyIncome NumericString `json:"monthly_income"`
}

// IncomeResponse represents the declared monthly income.
type IncomeResponse struct {
	MonthlyIncome float64 `json:"monthly_income"`
	Persisted     *bool   `json:"persisted,omitempty"`
}
