package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	StoreOpsTotal       *prometheus.CounterVec
	StoreOpDuration     *prometheus.HistogramVec
}

// New создает и регистрирует метрики в default registry
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
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		StoreOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "keyed_store_operations_total",
			Help:        "Total number of keyed record store operations",
			ConstLabels: constLabels,
		}, []string{"operation", "key", "result"}),

		StoreOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "keyed_store_operation_duration_seconds",
			Help:        "Keyed record store operation duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "key"}),
	}
}

// ObserveStoreOp записывает метрики одной операции хранилища
func (m *Metrics) ObserveStoreOp(operation, key, result string, seconds float64) {
	m.StoreOpsTotal.WithLabelValues(operation, key, result).Inc()
	m.StoreOpDuration.WithLabelValues(operation, key).Observe(seconds)
}
