package backendtest

import (
	stderrors "errors"
	"fmt"
	"strconv"

	apperrors "finance-tracker/internal/errors"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// apiError is a handler failure rendered as the standard error envelope.
type apiError struct {
	code    apperrors.ErrorCode
	details []string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.code, apperrors.GetErrorMessage(e.code))
}

func codeError(code apperrors.ErrorCode, details ...string) error {
	return &apiError{code: code, details: details}
}

// handleError renders every error as {"error": {...}} with the request ID as
// trace_id and counts it by code, route and status.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := GetRequestID(c)

	var (
		response *apperrors.ErrorResponse
		status   int
	)

	var coded *apiError
	var validationErr *validation.ValidationError
	var httpErr *echo.HTTPError

	switch {
	case stderrors.As(err, &coded):
		response = apperrors.NewErrorResponse(coded.code, requestID)
		if len(coded.details) > 0 {
			apperrors.WithDetails(coded.details...)(response)
		}
		status = apperrors.GetHTTPStatus(coded.code)
	case stderrors.As(err, &validationErr):
		response = apperrors.NewErrorResponse(apperrors.ValidationGeneral, requestID,
			apperrors.WithDetails(validationErr.Details...))
		status = apperrors.GetHTTPStatus(apperrors.ValidationGeneral)
	case stderrors.As(err, &httpErr):
		response = apperrors.NewErrorResponse(apperrors.CodeForStatus(httpErr.Code), requestID,
			apperrors.WithMessage(fmt.Sprintf("%v", httpErr.Message)))
		status = httpErr.Code
	default:
		response = apperrors.NewErrorResponse(apperrors.SystemInternalError, requestID)
		status = apperrors.GetHTTPStatus(apperrors.SystemInternalError)
	}

	level := s.logger.Warn
	if status >= 500 {
		level = s.logger.Error
	}
	level("backend error",
		"request_id", requestID,
		"error_code", response.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	s.errorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		s.logger.Error("failed to send error response", "request_id", requestID, "error", sendErr)
	}
}
