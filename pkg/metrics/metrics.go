package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics of the service
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Store (redis)
	StoreOperationsTotal   *prometheus.CounterVec
	StoreOperationDuration *prometheus.HistogramVec

	// Notifier
	NotificationsTotal *prometheus.CounterVec
}

// New creates and registers prometheus metrics for the given service name
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		StoreOperationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "store_operations_total",
			Help:        "Total number of key-value store commands",
			ConstLabels: constLabels,
		}, []string{"command", "status"}),

		StoreOperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "store_operation_duration_seconds",
			Help:        "Key-value store command duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"command"}),

		NotificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Total number of booking notifications by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}
