// Package error defines domain-specific errors for the SmartExpense application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotAuthorizedToModifyExpense is returned when user is not authorized to modify an expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")

	// ErrInvalidExpenseAmount is returned when the expense amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be greater than zero")

	// ErrInvalidExpenseCategory is returned when the category is not in the closed set.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrInvalidExpenseDate is returned when the expense date is invalid.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrNoteTooLong is returned when the expense note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrNoExpensesToExport is returned when a CSV export is requested with no matching expenses.
	ErrNoExpensesToExport = errors.New("no expenses to export")

	// ErrSuggestionUnavailable is returned when the AI category suggestion service cannot be reached.
	ErrSuggestionUnavailable = errors.New("category suggestion unavailable")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseDate     ExpenseErrorCode = "EXP-010003"
	ErrCodeNoteTooLong            ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010005"

	// Access errors (02XXXX)
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-020001"
	ErrCodeNotAuthorizedExpense ExpenseErrorCode = "EXP-020002"

	// Export errors (03XXXX)
	ErrCodeNoExpensesToExport ExpenseErrorCode = "EXP-030001"

	// Suggestion errors (04XXXX)
	ErrCodeSuggestionUnavailable ExpenseErrorCode = "EXP-040001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
