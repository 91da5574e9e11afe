package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPError_ExtractsMessage(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"leonardo error field", 400, `{"error":"invalid modelId","path":"$.modelId","code":"validation-failed"}`, "invalid modelId"},
		{"message field", 500, `{"message":"upstream down"}`, "upstream down"},
		{"nested error", 403, `{"error":{"message":"forbidden"}}`, "forbidden"},
		{"plain text", 502, "bad gateway\n", "bad gateway"},
		{"empty 401", 401, "", "unauthorized: check your API key"},
		{"empty 404", 404, "", "Not Found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewHTTPError("op", tc.status, []byte(tc.body))
			assert.Equal(t, KindAPI, e.Kind)
			assert.Equal(t, tc.status, e.StatusCode)
			assert.Equal(t, tc.want, e.Message)
		})
	}
}

func TestNetworkError_StatusZero(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("wrapped: %w", NewNetworkError("get models", context.DeadlineExceeded))
	require.True(t, Is(err, KindAPI))
	assert.Equal(t, 0, StatusCodeOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, IsRetryable(err))
}

func TestKindHelpers(t *testing.T) {
	t.Parallel()
	v := Validation("improve prompt", "prompt must not be empty")
	assert.True(t, Is(v, KindValidation))
	assert.False(t, Is(v, KindAPI))
	assert.False(t, IsRetryable(v))

	to := Timeout("upscale image", "job-1", 3)
	assert.True(t, Is(to, KindTimeout))
	assert.Equal(t, 3, to.Attempts)
	assert.Contains(t, to.Error(), "after 3 attempts")

	failed := JobFailed("create motion", "job-2", "")
	assert.True(t, Is(failed, KindAPI))
	assert.False(t, IsRetryable(failed))

	_, ok := KindOf(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestIsRetryable_StatusCodes(t *testing.T) {
	t.Parallel()
	for status, want := range map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusNotFound:            false,
		http.StatusRequestTimeout:      true,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
	} {
		assert.Equal(t, want, IsRetryable(NewHTTPError("op", status, nil)), "status %d", status)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Validation", KindValidation.String())
	assert.Equal(t, "API", KindAPI.String())
	assert.Equal(t, "Timeout", KindTimeout.String())
	assert.Equal(t, "Unknown(9)", Kind(9).String())
}
