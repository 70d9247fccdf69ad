package tg

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// Sentinel errors - use with errors.Is()
var (
	// API errors
	ErrUnauthorized    = errors.New("notigo: unauthorized (invalid token)")
	ErrForbidden       = errors.New("notigo: forbidden")
	ErrNotFound        = errors.New("notigo: not found")
	ErrTooManyRequests = errors.New("notigo: too many requests")

	// Markup errors
	ErrMalformedMarkup = errors.New("notigo: malformed markup rejected")

	// Chat/User errors
	ErrChatNotFound    = errors.New("notigo: chat not found")
	ErrBotBlocked      = errors.New("notigo: bot blocked by user")
	ErrBotKicked       = errors.New("notigo: bot kicked from chat")
	ErrUserDeactivated = errors.New("notigo: user deactivated")

	// Client errors
	ErrCircuitOpen      = errors.New("notigo: circuit breaker open")
	ErrResponseTooLarge = errors.New("notigo: response too large")
)

// ResponseParameters contains information about why a request was unsuccessful.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// APIError represents an error response from Telegram API.
// Use errors.As() to extract details, errors.Is() to match sentinels.
type APIError struct {
	Code        int
	Description string
	RetryAfter  time.Duration
	Method      string              // API method that failed
	Parameters  *ResponseParameters // Additional response parameters
	cause       error               // Underlying sentinel for errors.Is()
}

func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("notigo: %s failed: %s (code=%d, retry_after=%s)",
			e.Method, e.Description, e.Code, e.RetryAfter)
	}
	return fmt.Sprintf("notigo: %s failed: %s (code=%d)", e.Method, e.Description, e.Code)
}

// Unwrap returns the underlying sentinel error for errors.Is() support.
func (e *APIError) Unwrap() error { return e.cause }

// IsRetryable returns true if the error is temporary and may succeed on retry.
func (e *APIError) IsRetryable() bool {
	return e.Code == 429 || (e.Code >= 500 && e.Code <= 504)
}

// NewAPIError creates an APIError with automatic sentinel detection.
func NewAPIError(method string, code int, description string) *APIError {
	return &APIError{
		Code:        code,
		Description: description,
		Method:      method,
		cause:       DetectSentinel(code, description),
	}
}

// NewAPIErrorWithRetry creates an APIError with retry information.
func NewAPIErrorWithRetry(method string, code int, description string, retryAfter time.Duration) *APIError {
	return &APIError{
		Code:        code,
		Description: description,
		Method:      method,
		RetryAfter:  retryAfter,
		cause:       DetectSentinel(code, description),
	}
}

// DetectSentinel maps Telegram error codes/descriptions to sentinel errors.
// Description-based detection is prioritized over HTTP status codes for more specific errors.
func DetectSentinel(code int, desc string) error {
	// Check description first for specific error messages
	descLower := strings.ToLower(desc)
	switch {
	case strings.Contains(descLower, "can't parse entities"),
		strings.Contains(descLower, "cant parse entities"),
		strings.Contains(descLower, "unsupported parse_mode"),
		strings.Contains(descLower, "wrong parse_mode"):
		return ErrMalformedMarkup
	case strings.Contains(descLower, "chat not found"):
		return ErrChatNotFound
	case strings.Contains(descLower, "bot was blocked"):
		return ErrBotBlocked
	case strings.Contains(descLower, "bot was kicked"):
		return ErrBotKicked
	case strings.Contains(descLower, "user is deactivated"):
		return ErrUserDeactivated
	}

	// Fall back to generic HTTP status code sentinels
	switch code {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	case 429:
		return ErrTooManyRequests
	}

	return nil
}

// Every delivery fault falls into exactly one of three classes:
//
//   - markup rejection: Telegram refused the formatted entities
//     (IsMarkupRejection; code 400 with a "can't parse entities" or
//     "unsupported parse_mode" description)
//   - transient: may succeed on retry (IsTransient; 429, 5xx, timeouts,
//     connection faults, open circuit breaker)
//   - permanent: retrying cannot help (neither of the above; bad token,
//     unknown chat, other 4xx)

// IsMarkupRejection returns true if Telegram rejected the message because of
// its formatting entities rather than its content.
func IsMarkupRejection(err error) bool {
	return errors.Is(err, ErrMalformedMarkup)
}

// IsTransient returns true if the delivery fault is worth retrying.
// Cancellation of the caller's context is never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMalformedMarkup) || errors.Is(err, context.Canceled) {
		return false
	}
	var api *APIError
	if errors.As(err, &api) {
		return api.IsRetryable()
	}
	if errors.Is(err, ErrCircuitOpen) || errors.Is(err, ErrResponseTooLarge) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// ValidationError reports a rejected configuration value or override pair.
type ValidationError struct {
	Key     string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("notigo: validation: %s=%q - %s", e.Key, e.Value, e.Message)
	}
	return fmt.Sprintf("notigo: validation: %s - %s", e.Key, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(key, value, message string) *ValidationError {
	return &ValidationError{Key: key, Value: value, Message: message}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("notigo: config: %s - %s", e.Key, e.Message)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}
