package backendtest

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	apperrors "finance-tracker/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// HeaderRequestID is read from the request and echoed on the response
	HeaderRequestID = "X-Request-ID"
	// RequestIDContextKey is the echo context key holding the request ID
	RequestIDContextKey = "request_id"
)

// RequestID echoes the caller's X-Request-ID, generating one when absent.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(RequestIDContextKey, requestID)
			c.Response().Header().Set(HeaderRequestID, requestID)
			return next(c)
		}
	}
}

// GetRequestID returns the request ID set by RequestID, or "".
func GetRequestID(c echo.Context) string {
	requestID, ok := c.Get(RequestIDContextKey).(string)
	if !ok {
		return ""
	}
	return requestID
}

// RequireBearer rejects requests whose Authorization header does not carry
// token. An empty token disables the check.
func RequireBearer(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return codeError(apperrors.SessionMissingToken)
			}

			presented, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || presented != token {
				return codeError(apperrors.SessionExpired)
			}

			return next(c)
		}
	}
}

// RateLimit answers 429 once limiter runs dry. A nil limiter lets everything through.
func RateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter != nil && !limiter.Allow() {
				return codeError(apperrors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// PanicRecovery turns a handler panic into a SYSTEM_001 envelope.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						"request_id", GetRequestID(c),
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)
					err = codeError(apperrors.SystemInternalError)
				}
			}()

			return next(c)
		}
	}
}
