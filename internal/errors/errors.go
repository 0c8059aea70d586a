// Package errors provides custom error types for the ledgerdash API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Report validation errors. All of these are detected before any
// aggregation work begins.
var (
	ErrMissingParameter    = &AppError{Code: "MISSING_PARAMETER", Message: "Required parameter is missing", StatusCode: http.StatusBadRequest}
	ErrInvalidDateFormat   = &AppError{Code: "INVALID_DATE_FORMAT", Message: "Invalid date format, expected DD/MM/YYYY", StatusCode: http.StatusBadRequest}
	ErrInvalidDateRange    = &AppError{Code: "INVALID_DATE_RANGE", Message: "Invalid date range", StatusCode: http.StatusBadRequest}
	ErrInvalidReportFormat = &AppError{Code: "INVALID_REPORT_FORMAT", Message: "Report format must be 'yearly' or 'monthly'", StatusCode: http.StatusBadRequest}
)

// Ledger errors.
var (
	ErrIncomeNotFound     = &AppError{Code: "INCOME_NOT_FOUND", Message: "Income document not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound    = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense document not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound   = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Pending investment not found", StatusCode: http.StatusNotFound}
)

// Sync errors.
var (
	ErrExternalService = &AppError{Code: "EXTERNAL_SERVICE_ERROR", Message: "Upstream spreadsheet service failed", StatusCode: http.StatusBadGateway}
)
