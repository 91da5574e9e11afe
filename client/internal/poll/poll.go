// Package poll drives an asynchronous remote job to a terminal state by
// querying its status at a fixed interval, up to an attempt budget.
package poll

import (
	"context"
	stderrors "errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

const (
	// DefaultInterval is the delay between two status queries.
	DefaultInterval = 10 * time.Second
	// DefaultMaxAttempts bounds the total number of status queries (5 minutes at the default interval).
	DefaultMaxAttempts = 30
)

var errPending = stderrors.New("job still pending")

// Timer is the clock used between attempts. backoff.Timer satisfies it; tests
// inject one that fires immediately.
type Timer = backoff.Timer

// Config controls a polling loop. Zero values fall back to the defaults.
type Config struct {
	Interval    time.Duration
	MaxAttempts int
	Timer       Timer

	// OnAttempt runs after every status query.
	OnAttempt func(attempt int, status types.JobStatus)
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}

// Fetch queries the job once and reports its current status.
type Fetch[T any] func(ctx context.Context) (T, types.JobStatus, error)

// FailureReasoner is implemented by job results that can describe why the
// remote job failed. The reason ends up in the returned error.
type FailureReasoner interface {
	FailureReason() string
}

func failureReason(v any) string {
	if r, ok := v.(FailureReasoner); ok {
		return r.FailureReason()
	}
	return "remote status FAILED"
}

// Until calls fetch until the job reports COMPLETE, FAILED, or the attempt
// budget is spent.
//
//   - fetch errors are returned as-is on the attempt they occur
//   - FAILED yields a KindAPI error
//   - an exhausted budget yields a KindTimeout error carrying the attempt count
//   - ctx cancellation yields a KindAPI error, an expired ctx deadline a
//     KindTimeout error; both wrap ctx.Err()
//
// Any status other than COMPLETE and FAILED counts as pending.
func Until[T any](ctx context.Context, cfg Config, op, jobID string, fetch Fetch[T]) (T, error) {
	cfg = cfg.withDefaults()

	var (
		zero     T
		result   T
		attempts int
	)

	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		attempts++
		v, status, err := fetch(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		if cfg.OnAttempt != nil {
			cfg.OnAttempt(attempts, status)
		}
		log.Debug().
			Str("op", op).
			Str("job_id", jobID).
			Int("attempt", attempts).
			Str("status", string(status)).
			Msg("job status")

		switch status {
		case types.StatusComplete:
			result = v
			return nil
		case types.StatusFailed:
			return backoff.Permanent(errors.JobFailed(op, jobID, failureReason(v)))
		default:
			return errPending
		}
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(cfg.Interval), uint64(cfg.MaxAttempts-1)),
		ctx,
	)
	notify := func(_ error, next time.Duration) {
		log.Debug().Str("op", op).Str("job_id", jobID).Dur("next", next).Msg("job pending, waiting")
	}

	err := backoff.RetryNotifyWithTimer(operation, b, notify, cfg.Timer)
	switch {
	case err == nil:
		return result, nil
	case stderrors.Is(err, errPending):
		log.Warn().Str("op", op).Str("job_id", jobID).Int("attempts", attempts).Msg("polling budget exhausted")
		return zero, errors.Timeout(op, jobID, attempts)
	case isContextErr(err):
		return zero, errors.Interrupted(op, jobID, attempts, err)
	default:
		return zero, err
	}
}

// isContextErr matches a bare context error. Errors already carrying a Kind
// (e.g. a transport failure caused by cancellation) are left alone.
func isContextErr(err error) bool {
	if _, ok := errors.KindOf(err); ok {
		return false
	}
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}
