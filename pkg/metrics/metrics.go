package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsConfirmed  prometheus.Counter
	ValidationFailures *prometheus.CounterVec
	FlowsCancelled     prometheus.Counter
	CatalogDoctors     prometheus.Gauge
}

// New регистрирует метрики в reg.
// nil reg означает prometheus.DefaultRegisterer.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),

		BookingsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_confirmed_total",
			Help:        "Total number of confirmed appointments",
			ConstLabels: labels,
		}),

		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validation_failures_total",
			Help:        "Booking form validation failures by field",
			ConstLabels: labels,
		}, []string{"field"}),

		FlowsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_flows_cancelled_total",
			Help:        "Booking flows torn down while a submission was pending",
			ConstLabels: labels,
		}),

		CatalogDoctors: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "catalog_doctors",
			Help:        "Number of doctors in the catalog",
			ConstLabels: labels,
		}),
	}
}

// IncBookingsConfirmed увеличивает счетчик подтвержденных бронирований
func (m *Metrics) IncBookingsConfirmed() {
	m.BookingsConfirmed.Inc()
}

// IncValidationFailure учитывает ошибку валидации поля формы
func (m *Metrics) IncValidationFailure(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

// IncFlowsCancelled учитывает процесс, закрытый во время отправки
func (m *Metrics) IncFlowsCancelled() {
	m.FlowsCancelled.Inc()
}
