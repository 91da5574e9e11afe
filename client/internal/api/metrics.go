package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "leonardo_client",
		Name:      "requests_total",
		Help:      "HTTP requests sent to the Leonardo API by operation and status code.",
	},
	[]string{"operation", "code"},
)
