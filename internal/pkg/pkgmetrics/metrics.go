package pkgmetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the HTTP and storage collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	StoreQueryDuration *prometheus.HistogramVec
	StoreQueryErrors   *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Metrics{
		registry: reg,
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "gocafe_http_requests_total",
			Help: "Total HTTP requests by method, matched route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gocafe_http_request_duration_seconds",
			Help:    "Latency of HTTP requests by method and matched route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StoreQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gocafe_store_query_duration_seconds",
			Help:    "Duration of storage operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"driver", "query"}), // query: 'get_employee', 'delete_menu', ...
		StoreQueryErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "gocafe_store_query_errors_total",
			Help: "Storage operations that returned an error other than not-found.",
		}, []string{"driver", "query"}),
	}
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveQuery records one storage operation. A nil Metrics is a no-op so
// stores can be built without instrumentation in tests.
func (m *Metrics) ObserveQuery(driver, query string, start time.Time, failed bool) {
	if m == nil {
		return
	}

	m.StoreQueryDuration.WithLabelValues(driver, query).Observe(time.Since(start).Seconds())
	if failed {
		m.StoreQueryErrors.WithLabelValues(driver, query).Inc()
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
