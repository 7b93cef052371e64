package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
)

// ErrorKind classifies a failed provider call
type ErrorKind string

const (
	// KindTransport covers network failures and 5xx responses
	KindTransport ErrorKind = "transport"
	// KindAuth covers rejected or missing credentials (401/403)
	KindAuth ErrorKind = "auth"
	// KindQuota covers rate limiting and exhausted quota (429)
	KindQuota ErrorKind = "quota"
	// KindResponse covers successful exchanges without usable text
	KindResponse ErrorKind = "response"
	// KindUnknown is anything else the provider rejected
	KindUnknown ErrorKind = "unknown"
)

// ErrEmptyCompletion is returned when the provider answers without any text.
var ErrEmptyCompletion = errors.New("empty completion")

// APICallError represents a failed call to the completion provider
type APICallError struct {
	Provider Provider
	Kind     ErrorKind
	Message  string
	Cause    error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s API call failed (%s): %s: %v", e.Provider, e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s API call failed (%s): %s", e.Provider, e.Kind, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// Retryable reports whether a later attempt could succeed.
func (e *APICallError) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindQuota
}

// IsRetryable reports whether err is an APICallError worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APICallError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return false
}

// kindFromStatus maps an HTTP status code onto an ErrorKind.
func kindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindQuota
	case status >= 500:
		return KindTransport
	case status == 0:
		return KindTransport
	default:
		return KindUnknown
	}
}

// kindFromError classifies errors that carry no status code.
func kindFromError(err error) ErrorKind {
	if errors.Is(err, ErrEmptyCompletion) {
		return KindResponse
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return KindTransport
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "resourceexhausted"):
		return KindQuota
	case strings.Contains(msg, "api key") || strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "permission_denied") || strings.Contains(msg, "permissiondenied"):
		return KindAuth
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") || strings.Contains(msg, "unavailable"):
		return KindTransport
	}
	return KindUnknown
}

func newCallError(p Provider, message string, status int, cause error) *APICallError {
	kind := kindFromStatus(status)
	if status == 0 && cause != nil {
		kind = kindFromError(cause)
	}
	return &APICallError{
		Provider: p,
		Kind:     kind,
		Message:  message,
		Cause:    cause,
	}
}
