package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const maxMessageLen = 512

// NewHTTPError creates the API error for a response with status >= 400.
func NewHTTPError(op string, statusCode int, body []byte) *Error {
	return &Error{
		Kind:       KindAPI,
		Op:         op,
		StatusCode: statusCode,
		Message:    extractMessage(statusCode, body),
		Err:        fmt.Errorf("%s failed: HTTP %d", op, statusCode),
	}
}

// NewNetworkError wraps a transport-level failure. There is no HTTP status,
// so StatusCode stays 0.
func NewNetworkError(op string, err error) *Error {
	return &Error{
		Kind: KindAPI,
		Op:   op,
		Err:  fmt.Errorf("%s network error: %w", op, err),
	}
}

// NewDecodeError wraps a response body that could not be decoded.
func NewDecodeError(op string, statusCode int, err error) *Error {
	return &Error{
		Kind:       KindAPI,
		Op:         op,
		StatusCode: statusCode,
		Message:    "malformed response body",
		Err:        err,
	}
}

// extractMessage pulls the most useful text out of an error body. Leonardo
// answers with {"error": "...", "path": "...", "code": "..."}; other gateways
// use "message".
func extractMessage(statusCode int, body []byte) string {
	var payload struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch v := payload.Error.(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			if m, ok := v["message"].(string); ok && m != "" {
				return m
			}
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		if len(text) > maxMessageLen {
			text = text[:maxMessageLen]
		}
		return text
	}
	if statusCode == http.StatusUnauthorized {
		return "unauthorized: check your API key"
	}
	return http.StatusText(statusCode)
}

// IsRetryable reports whether a caller could reasonably retry the request
// that produced err. The client itself never retries.
//   - 408 and 429 are retryable
//   - other 4xx are not
//   - 5xx and transport failures are retryable
//   - validation errors and failed jobs are not; timeouts are
func IsRetryable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindValidation:
		return false
	case KindTimeout:
		return true
	}
	switch {
	case e.StatusCode == 0:
		// transport failures wrap an underlying error; failed jobs do not
		return e.Err != nil
	case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return false
	case e.StatusCode >= 500 && e.StatusCode < 600:
		return true
	default:
		return false
	}
}
