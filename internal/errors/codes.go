package errors

// ErrorCode represents a standardized error code used throughout the client
type ErrorCode string

// Session error codes (SESSION_*)
const (
	SessionMissingToken ErrorCode = "SESSION_001"
	SessionExpired      ErrorCode = "SESSION_002"
	SessionForbidden    ErrorCode = "SESSION_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryDefaultLocked ErrorCode = "CATEGORY_002"
	CategoryInUse         ErrorCode = "CATEGORY_003"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound        ErrorCode = "GOAL_001"
	GoalInvalidProgress ErrorCode = "GOAL_002"
)

// Investment error codes (INVESTMENT_*)
const (
	InvestmentNotFound       ErrorCode = "INVESTMENT_001"
	InvestmentAmountMismatch ErrorCode = "INVESTMENT_002"
)

// Report error codes (REPORT_*)
const (
	ReportInvalidPeriod  ErrorCode = "REPORT_001"
	ReportExportFailed   ErrorCode = "REPORT_002"
	ReportNoTransactions ErrorCode = "REPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemCacheError         ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemConflict           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	SessionMissingToken: "No session token is available",
	SessionExpired:      "Session has expired, please sign in again",
	SessionForbidden:    "You do not have permission to perform this action",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid format",
	ValidationOutOfRange:    "Value is out of acceptable range",
	ValidationInvalidDate:   "Invalid date format",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must not be negative",
	TransactionInvalidType:   "Transaction type must be INCOME or EXPENSE",

	CategoryNotFound:      "Category not found",
	CategoryDefaultLocked: "Default categories cannot be deleted",
	CategoryInUse:         "Category is still used by transactions",

	GoalNotFound:        "Goal not found",
	GoalInvalidProgress: "Progress amount must be positive",

	InvestmentNotFound:       "Investment not found",
	InvestmentAmountMismatch: "Amount must equal quantity times unit price",

	ReportInvalidPeriod:  "Report period is not recognized",
	ReportExportFailed:   "Report export failed",
	ReportNoTransactions: "No transactions in the selected period",

	SystemInternalError:      "An internal error occurred",
	SystemCacheError:         "Local cache operation failed",
	SystemServiceUnavailable: "Backend is temporarily unavailable",
	SystemConfigurationError: "Configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Too many requests, please try again later",
	SystemConflict:           "The resource was modified concurrently",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the code is part of the catalogue
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}
