// Package error defines domain-specific errors for the SmartExpense application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when no budget exists for the requested month.
	// Note: for dashboard flows the absence of a budget is not an error; this
	// sentinel is only used by the direct GET budget endpoint.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetLimit is returned when the budget limit is zero or negative.
	ErrInvalidBudgetLimit = errors.New("budget limit must be greater than zero")

	// ErrInvalidBudgetMonth is returned when the month token is not of the form YYYY-MM.
	ErrInvalidBudgetMonth = errors.New("invalid budget month")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetLimit BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetMonth BudgetErrorCode = "BDG-010002"

	// Access errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
