package client

import "github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"

// Error is the only error type returned by Client methods. Use errors.As to
// inspect it, or the helpers below.
type Error = errors.Error

// ErrorKind tags the cause of an Error.
type ErrorKind = errors.Kind

const (
	KindValidation = errors.KindValidation
	KindAPI        = errors.KindAPI
	KindTimeout    = errors.KindTimeout
)

// IsValidation reports whether err was raised before any request was sent.
func IsValidation(err error) bool { return errors.Is(err, errors.KindValidation) }

// IsAPI reports whether err came from a non-2xx response, a transport failure,
// or a job that ended FAILED.
func IsAPI(err error) bool { return errors.Is(err, errors.KindAPI) }

// IsTimeout reports whether a job outlived the polling budget.
func IsTimeout(err error) bool { return errors.Is(err, errors.KindTimeout) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int { return errors.StatusCodeOf(err) }

// IsRetryable reports whether retrying the failed call may succeed. The client
// never retries on its own.
func IsRetryable(err error) bool { return errors.IsRetryable(err) }
