// Package metrics registers the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restops_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "restops_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	// Realtime metrics
	WSConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "restops_ws_connections",
			Help: "Registered WebSocket connections",
		},
		[]string{"role"},
	)

	RegistryEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "restops_registry_evictions_total",
			Help: "Connections evicted by a newer registration of the same identity",
		},
	)

	// Messaging metrics
	MessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restops_messages_sent_total",
			Help: "Total messages persisted",
		},
		[]string{"kind"}, // "direct", "branch" or "shop"
	)

	DirectDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restops_direct_deliveries_total",
			Help: "Direct message delivery attempts by outcome",
		},
		[]string{"result"}, // "delivered", "offline" or "transport_failed"
	)

	BroadcastFanout = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restops_broadcast_fanout_total",
			Help: "Connections reached by topic publishes",
		},
		[]string{"scope"},
	)

	// Database metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "restops_db_query_duration_seconds",
			Help:    "Database statement duration",
			Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5},
		},
		[]string{"outcome"}, // "ok" or "error"
	)

	// Cluster metrics
	BrokerPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "restops_broker_publish_failures_total",
			Help: "Topic events that could not be published to the broker",
		},
	)
)

// Delivery outcomes.
const (
	ResultDelivered       = "delivered"
	ResultOffline         = "offline"
	ResultTransportFailed = "transport_failed"
)
