package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics exposes application counters on /metrics
type PrometheusMetrics struct {
	transactionsRecorded *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	authEventsTotal      *prometheus.CounterVec
	usersRegistered      prometheus.Counter
	apiErrorsTotal       *prometheus.CounterVec
}

func NewPrometheusMetrics() *PrometheusMetrics {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		usersRegistered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of registered users",
			},
		),
		apiErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code",
			},
			[]string{"code"},
		),
	}
}

// RecordTransaction counts a recorded transaction by type
func (m *PrometheusMetrics) RecordTransaction(transactionType string) {
	m.transactionsRecorded.WithLabelValues(transactionType).Inc()
}

// RecordRequest observes one HTTP request
func (m *PrometheusMetrics) RecordRequest(method, path, status string, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordAuthEvent counts an authentication event (login, register, demo)
func (m *PrometheusMetrics) RecordAuthEvent(eventType string) {
	m.authEventsTotal.WithLabelValues(eventType).Inc()
}

// RecordRegistration counts a completed registration
func (m *PrometheusMetrics) RecordRegistration() {
	m.usersRegistered.Inc()
}

// RecordAPIError counts an error response by code
func (m *PrometheusMetrics) RecordAPIError(code string) {
	m.apiErrorsTotal.WithLabelValues(code).Inc()
}
