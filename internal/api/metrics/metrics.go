// Package metrics defines and registers all Prometheus metrics for the
// bulletin-board server. It is the single source of truth for metric names,
// labels, and help strings; registration happens with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bulletin"

// ── Connection metrics ────────────────────────────────────────────────────────

// ConnectionsAcceptedTotal counts TCP connections handed to the worker pool.
var ConnectionsAcceptedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connections_accepted_total",
		Help:      "Total number of accepted TCP connections.",
	},
)

// ConnectionsDroppedTotal counts connections closed without a response
// (unparseable request, premature EOF, read timeout).
var ConnectionsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connections_dropped_total",
		Help:      "Total number of connections dropped before a response was written.",
	},
)

// ConnectionQueueDepth tracks connections waiting for a free worker.
var ConnectionQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "connection_queue_depth",
		Help:      "Current number of accepted connections queued for a worker.",
	},
)

// ── Request metrics ───────────────────────────────────────────────────────────

// RequestsTotal counts completed requests.
// Labels:
//   - method: HTTP method as received
//   - status: numeric status code written to the wire
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of requests answered, by method and status.",
	},
	[]string{"method", "status"},
)

// RequestDuration measures handling time from parse completion to response
// write, per method.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of request handling, from parsed request to written response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Board metrics ─────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered.",
	},
)

// AdsCreatedTotal counts successfully created advertisements.
var AdsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ads_created_total",
		Help:      "Total number of advertisements created.",
	},
)

// AdResponsesTotal counts successfully recorded ad responses.
var AdResponsesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ad_responses_total",
		Help:      "Total number of ad responses recorded.",
	},
)
