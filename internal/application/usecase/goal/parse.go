// Package goal contains goal-related use cases.
package goal

import (
	"errors"
	"math"
	"strconv"
	"strings"

	domainerror "github.com/piggybank/backend/internal/domain/error"
)

// parseRequiredAmount coerces a required numeric text field. Empty or
// unparseable input fails with an invalid-input error.
func parseRequiredAmount(raw string, code domainerror.LedgerErrorCode, field string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domainerror.NewLedgerError(code, field+" is required", domainerror.ErrInvalidInput)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, domainerror.NewLedgerError(code, field+" must be a number", domainerror.ErrInvalidInput)
	}
	return value, nil
}

// parseOptionalAmount coerces an optional numeric text field. Empty,
// unparseable or negative input becomes zero.
func parseOptionalAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}
	return value
}

// persistedResult splits a store result into a persisted flag and a real
// error. A failed snapshot save after a committed mutation is reported as
// persisted=false, not as a failed operation.
func persistedResult(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domainerror.ErrSnapshotSave) {
		return false, nil
	}
	return false, err
}
