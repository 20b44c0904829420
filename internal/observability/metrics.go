package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_cnh_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CNHOperations tracks CNH operations by outcome
	CNHOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cnh_operations_total",
			Help: "Number of CNH operations",
		},
		[]string{"operation", "status"},
	)

	// StoreOperationDuration tracks store call latency per backend
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "app_cnh_store_operation_duration_seconds",
			Help:    "Duration of CNH store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_cnh_active_connections",
			Help: "Number of active connections",
		},
	)
)
