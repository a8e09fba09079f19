package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// APIError is a failed backend call.
type APIError struct {
	Status    int
	Code      ErrorCode
	Message   string
	Details   []string
	RequestID string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("api error %d [%s]: %s (request: %s)", e.Status, e.Code, e.Message, e.RequestID)
	}
	return fmt.Sprintf("api error %d [%s]: %s", e.Status, e.Code, e.Message)
}

func (e *APIError) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

func (e *APIError) IsServerError() bool {
	return e.Status >= 500
}

// Retryable reports whether the same call may succeed later.
func (e *APIError) Retryable() bool {
	return e.IsServerError() || e.Status == http.StatusTooManyRequests
}

// frameworkError is the plain envelope some backends emit instead of ErrorResponse.
type frameworkError struct {
	StatusCode int             `json:"statusCode"`
	Message    json.RawMessage `json:"message"`
	Error      string          `json:"error"`
}

// DecodeAPIError builds an APIError from a non-2xx response. Both the
// standard envelope and the {statusCode, message, error} shape are
// understood; anything else keeps the raw body as the message.
func DecodeAPIError(status int, body []byte, requestID string) *APIError {
	apiErr := &APIError{
		Status:    status,
		Code:      CodeForStatus(status),
		RequestID: requestID,
	}

	var envelope ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = ErrorCode(envelope.Error.Code)
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
		if envelope.Error.TraceID != "" {
			apiErr.RequestID = envelope.Error.TraceID
		}
		return apiErr
	}

	var plain frameworkError
	if err := json.Unmarshal(body, &plain); err == nil && (len(plain.Message) > 0 || plain.Error != "") {
		apiErr.Message, apiErr.Details = frameworkMessage(plain)
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = GetErrorMessage(apiErr.Code)
	}
	return apiErr
}

func frameworkMessage(plain frameworkError) (string, []string) {
	var single string
	if err := json.Unmarshal(plain.Message, &single); err == nil && single != "" {
		return single, nil
	}

	var many []string
	if err := json.Unmarshal(plain.Message, &many); err == nil && len(many) > 0 {
		return plain.Error, many
	}

	return plain.Error, nil
}

// CodeForStatus maps an HTTP status to the closest catalogue code
func CodeForStatus(status int) ErrorCode {
	switch {
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ValidationGeneral
	case status == http.StatusUnauthorized:
		return SessionExpired
	case status == http.StatusForbidden:
		return SessionForbidden
	case status == http.StatusNotFound:
		return SystemUnexpectedError
	case status == http.StatusConflict:
		return SystemConflict
	case status == http.StatusTooManyRequests:
		return SystemRateLimitExceeded
	case status == http.StatusServiceUnavailable, status == http.StatusBadGateway, status == http.StatusGatewayTimeout:
		return SystemServiceUnavailable
	case status >= 500:
		return SystemInternalError
	default:
		return SystemUnexpectedError
	}
}

// GetHTTPStatus returns the HTTP status a backend uses for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate, TransactionInvalidAmount,
		TransactionInvalidType, GoalInvalidProgress, InvestmentAmountMismatch,
		ReportInvalidPeriod:
		return http.StatusBadRequest

	case SessionMissingToken, SessionExpired:
		return http.StatusUnauthorized

	case SessionForbidden, CategoryDefaultLocked:
		return http.StatusForbidden

	case TransactionNotFound, CategoryNotFound, GoalNotFound, InvestmentNotFound:
		return http.StatusNotFound

	case CategoryInUse, SystemConflict:
		return http.StatusConflict

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// AsAPIError unwraps err into an APIError when it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// HasCode reports whether err is a backend error with the given code.
func HasCode(err error, code ErrorCode) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == code
}
