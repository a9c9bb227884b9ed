// Package metrics defines and registers all custom Prometheus metrics for the
// portal's REST client. It is the single source of truth for metric names,
// labels, and help strings. All metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// RequestsTotal counts completed backend requests.
// Labels:
//   - method: HTTP method of the request (e.g. "GET")
//   - path: request path (e.g. "/shipments/")
//   - status: numeric HTTP status, or "error" when no response was received
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of requests sent to the backend.",
	},
	[]string{"method", "path", "status"},
)

// RequestErrorsTotal counts requests that failed before a response arrived.
// Label:
//   - reason: "network" (transport failure, incl. timeout) or "encode"
var RequestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_errors_total",
		Help:      "Total number of backend requests that failed without a response.",
	},
	[]string{"reason"},
)

// RequestDuration measures round-trip time per backend endpoint.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Round-trip duration of backend requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)
