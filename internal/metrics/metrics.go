// Package metrics provides Prometheus metrics for Wed.Control.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "wedcontrol"
)

// Storage metrics
var (
	// StorageWritesTotal counts full rewrites of a persisted record.
	StorageWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "writes_total",
			Help:      "Total record rewrites by record key",
		},
		[]string{"record"},
	)

	// StorageWriteErrorsTotal counts rewrites the backend rejected.
	StorageWriteErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "write_errors_total",
			Help:      "Total failed record rewrites by record key",
		},
		[]string{"record"},
	)

	// ProjectsStored tracks the project collection by partition.
	ProjectsStored = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "projects",
			Help:      "Number of stored projects by state",
		},
		[]string{"state"},
	)
)

// Domain metrics
var (
	// MutationsTotal counts applied project updates by kind.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "project",
			Name:      "mutations_total",
			Help:      "Total project updates applied by update kind",
		},
		[]string{"kind"},
	)

	// ShareResolutionsTotal counts share link lookups by outcome
	// (found, materialized or preview).
	ShareResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "share",
			Name:      "resolutions_total",
			Help:      "Total share link resolutions by outcome",
		},
		[]string{"outcome"},
	)
)

// RPC metrics
var (
	// RPCRequestsTotal counts Connect calls by procedure and code.
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Total RPC requests by procedure and result code",
		},
		[]string{"procedure", "code"},
	)

	// RPCDuration tracks Connect call latency.
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "RPC latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"procedure"},
	)
)

// Handler returns the HTTP handler that exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
