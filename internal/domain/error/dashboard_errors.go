// Package error defines domain-specific errors for the SmartExpense application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidMonthFormat is returned when a month parameter is not of the form YYYY-MM.
	ErrInvalidMonthFormat = errors.New("invalid month format")

	// ErrInvalidTrendWindow is returned when the trend window is out of range.
	ErrInvalidTrendWindow = errors.New("invalid trend window")

	// ErrInvalidLocale is returned when an unsupported locale is requested.
	ErrInvalidLocale = errors.New("unsupported locale")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthFormat DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidTrendWindow DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidLocale      DashboardErrorCode = "DSH-010003"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
