// Package error defines domain-specific errors for the Virtual Piggy Bank application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidInput is returned when a required field is missing or unparseable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when a deposit amount is not a positive finite number.
	ErrInvalidAmount = errors.New("invalid deposit amount")

	// ErrGoalNotFound is returned when an operation references a goal that does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrSnapshotSave is returned when the persistence adapter fails to store a ledger snapshot.
	ErrSnapshotSave = errors.New("failed to save ledger snapshot")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidName        LedgerErrorCode = "LGR-010001"
	ErrCodeInvalidGoalAmount  LedgerErrorCode = "LGR-010002"
	ErrCodeInvalidGoalKind    LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidGoalPeriod  LedgerErrorCode = "LGR-010004"
	ErrCodeInvalidDeposit     LedgerErrorCode = "LGR-010005"
	ErrCodeGoalNotFound       LedgerErrorCode = "LGR-010006"
	ErrCodeMissingGoalFields  LedgerErrorCode = "LGR-010007"

	// Persistence errors (02XXXX)
	ErrCodeSnapshotSaveFailed LedgerErrorCode = "LGR-020001"
	ErrCodeSnapshotLoadFailed LedgerErrorCode = "LGR-020002"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited LedgerErrorCode = "LGR-030001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
