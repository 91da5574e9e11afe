// Package errors provides the single error type surfaced by the client SDK.
// Every failure carries a Kind so callers can branch without string matching.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Kind tags the cause of an Error.
type Kind int

const (
	// KindValidation means the caller supplied an invalid argument. No request was sent.
	KindValidation Kind = iota

	// KindAPI covers non-2xx responses, transport failures (StatusCode 0) and
	// jobs that reached the FAILED state.
	KindAPI

	// KindTimeout means a job was still pending when the polling budget ran out.
	// The remote job keeps running.
	KindTimeout
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindAPI:
		return "API"
	case KindTimeout:
		return "Timeout"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is returned by every client operation.
type Error struct {
	Kind       Kind
	Op         string // logical operation, e.g. "generate images"
	StatusCode int    // HTTP status code (0 for transport and non-HTTP errors)
	Message    string // best-effort message extracted from the response body
	Attempts   int    // status queries performed (Timeout only)
	Err        error  // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Kind == KindTimeout:
		return fmt.Sprintf("leonardo: %s: [%s] %s (after %d attempts)", e.Op, e.Kind, msg, e.Attempts)
	case e.StatusCode > 0:
		return fmt.Sprintf("leonardo: %s: [%s] HTTP %d: %s", e.Op, e.Kind, e.StatusCode, msg)
	default:
		return fmt.Sprintf("leonardo: %s: [%s] %s", e.Op, e.Kind, msg)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a KindValidation error.
func Validation(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: fmt.Sprintf(format, args...)}
}

// JobFailed builds the KindAPI error for a job that reached FAILED.
func JobFailed(op, jobID, reason string) *Error {
	if reason == "" {
		reason = "job failed"
	}
	return &Error{Kind: KindAPI, Op: op, Message: fmt.Sprintf("job %s: %s", jobID, reason)}
}

// Timeout builds the KindTimeout error for an exhausted polling budget.
func Timeout(op, jobID string, attempts int) *Error {
	return &Error{
		Kind:     KindTimeout,
		Op:       op,
		Message:  fmt.Sprintf("job %s did not reach a terminal state", jobID),
		Attempts: attempts,
	}
}

// Interrupted builds the error for a wait cut short by its context. An
// expired deadline is a KindTimeout, a cancellation a KindAPI error with
// status 0. Both wrap the context error.
func Interrupted(op, jobID string, attempts int, err error) *Error {
	kind := KindAPI
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	return &Error{
		Kind:     kind,
		Op:       op,
		Message:  fmt.Sprintf("waiting for job %s interrupted: %v", jobID, err),
		Attempts: attempts,
		Err:      err,
	}
}

// KindOf reports the Kind of err and whether err wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Is reports whether err wraps an *Error of kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
