package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics метрики сервиса для Prometheus
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreatedTotal prometheus.Counter
	dispatchesTotal      prometheus.Counter
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		bookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of booking requests accepted",
			ConstLabels: constLabels,
		}),

		dispatchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "dispatches_total",
			Help:        "Total number of dispatched bookings",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, durationSeconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// IncBookingCreated увеличивает счётчик принятых заявок
func (m *Metrics) IncBookingCreated() {
	m.bookingsCreatedTotal.Inc()
}

// IncDispatch увеличивает счётчик диспетчеризаций
func (m *Metrics) IncDispatch() {
	m.dispatchesTotal.Inc()
}
