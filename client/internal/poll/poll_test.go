package poll

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// instantTimer fires as soon as it is started and records requested delays.
type instantTimer struct {
	c      chan time.Time
	starts []time.Duration
}

func newInstantTimer() *instantTimer { return &instantTimer{c: make(chan time.Time, 1)} }

func (t *instantTimer) Start(d time.Duration) {
	t.starts = append(t.starts, d)
	t.c <- time.Now()
}
func (t *instantTimer) Stop()               {}
func (t *instantTimer) C() <-chan time.Time { return t.c }

// scripted returns the given statuses in order, repeating the last one.
func scripted(statuses ...types.JobStatus) (Fetch[string], *int) {
	calls := 0
	return func(context.Context) (string, types.JobStatus, error) {
		i := calls
		calls++
		if i >= len(statuses) {
			i = len(statuses) - 1
		}
		return "https://x/img.png", statuses[i], nil
	}, &calls
}

func TestUntil_CompletesAfterPending(t *testing.T) {
	t.Parallel()
	timer := newInstantTimer()
	fetch, calls := scripted(types.StatusPending, types.StatusPending, types.StatusComplete)

	got, err := Until(context.Background(), Config{Interval: 2 * time.Second, MaxAttempts: 5, Timer: timer}, "upscale image", "job-1", fetch)
	require.NoError(t, err)
	assert.Equal(t, "https://x/img.png", got)
	assert.Equal(t, 3, *calls)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, timer.starts)
}

func TestUntil_TimeoutAfterBudget(t *testing.T) {
	t.Parallel()
	fetch, calls := scripted(types.StatusPending)

	_, err := Until(context.Background(), Config{Interval: time.Second, MaxAttempts: 3, Timer: newInstantTimer()}, "upscale image", "job-1", fetch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindTimeout))
	assert.Equal(t, 3, *calls)

	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, 3, e.Attempts)
}

func TestUntil_SingleAttemptBudget(t *testing.T) {
	t.Parallel()
	fetch, calls := scripted(types.StatusPending)
	_, err := Until(context.Background(), Config{MaxAttempts: 1, Timer: newInstantTimer()}, "op", "job", fetch)
	assert.True(t, errors.Is(err, errors.KindTimeout))
	assert.Equal(t, 1, *calls)
}

func TestUntil_FailedStatus(t *testing.T) {
	t.Parallel()
	fetch, calls := scripted(types.StatusPending, types.StatusFailed)

	_, err := Until(context.Background(), Config{MaxAttempts: 10, Timer: newInstantTimer()}, "create motion", "job-2", fetch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindAPI))
	assert.Contains(t, err.Error(), "job-2")
	assert.Equal(t, 2, *calls)
}

func TestUntil_FetchErrorStopsImmediately(t *testing.T) {
	t.Parallel()
	calls := 0
	boom := errors.NewHTTPError("get variation", 404, []byte(`{"error":"not found"}`))
	fetch := func(context.Context) (string, types.JobStatus, error) {
		calls++
		return "", "", boom
	}

	_, err := Until(context.Background(), Config{MaxAttempts: 10, Timer: newInstantTimer()}, "op", "job", fetch)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 404, errors.StatusCodeOf(err))
	assert.Equal(t, 1, calls)
}

func TestUntil_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	fetch := func(context.Context) (string, types.JobStatus, error) {
		calls++
		cancel()
		return "", types.StatusPending, nil
	}

	_, err := Until(ctx, Config{Interval: time.Hour, MaxAttempts: 10}, "op", "job", fetch)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, errors.Is(err, errors.KindAPI))
	assert.Equal(t, 0, errors.StatusCodeOf(err))
	assert.Equal(t, 1, calls)
}

func TestUntil_DeadlineExceeded(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	fetch, calls := scripted(types.StatusPending)

	_, err := Until(ctx, Config{MaxAttempts: 10, Timer: newInstantTimer()}, "op", "job", fetch)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, errors.Is(err, errors.KindTimeout))
	assert.Equal(t, 0, *calls)
}

func TestUntil_FailedStatusCarriesReason(t *testing.T) {
	t.Parallel()
	fetch := func(context.Context) (*types.Variation, types.JobStatus, error) {
		v := &types.Variation{ID: "var-1", Status: types.StatusFailed, TransformType: "UPSCALE"}
		return v, v.Status, nil
	}

	_, err := Until(context.Background(), Config{MaxAttempts: 3, Timer: newInstantTimer()}, "wait for upscale", "var-1", fetch)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindAPI))
	assert.Contains(t, err.Error(), "UPSCALE var-1 reported status FAILED")
}

func TestUntil_OnAttemptHook(t *testing.T) {
	t.Parallel()
	var seen []types.JobStatus
	fetch, _ := scripted(types.StatusPending, types.StatusComplete)
	cfg := Config{MaxAttempts: 5, Timer: newInstantTimer(), OnAttempt: func(_ int, s types.JobStatus) { seen = append(seen, s) }}

	_, err := Until(context.Background(), cfg, "op", "job", fetch)
	require.NoError(t, err)
	assert.Equal(t, []types.JobStatus{types.StatusPending, types.StatusComplete}, seen)
}
