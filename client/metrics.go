package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	jobGeneration = "generation"
	jobUpscale    = "upscale"
	jobMotion     = "motion"
)

var (
	pollAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "leonardo_client",
			Name:      "poll_attempts_total",
			Help:      "Job status queries issued while waiting for remote jobs.",
		},
		[]string{"job"},
	)

	jobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "leonardo_client",
			Name:      "jobs_total",
			Help:      "Remote jobs waited on, by outcome (complete, failed, timeout, error).",
		},
		[]string{"job", "outcome"},
	)
)

func jobOutcome(err error) string {
	switch {
	case err == nil:
		return "complete"
	case IsTimeout(err):
		return "timeout"
	case IsAPI(err) && StatusCode(err) == 0 && !IsRetryable(err):
		return "failed"
	default:
		return "error"
	}
}
