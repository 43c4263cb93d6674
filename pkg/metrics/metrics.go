package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// HTTP-метрики заполняются middleware, метрики реестра бронирований - самим реестром
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Реестр бронирований
	HoldsCreatedTotal      prometheus.Counter
	HoldsExpiredTotal      prometheus.Counter
	PaymentsConfirmedTotal prometheus.Counter
	CancellationsTotal     prometheus.Counter
	AdminRemovalsTotal     prometheus.Counter
	LiveBookings           prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
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

		HoldsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "ledger_holds_created_total",
			Help:        "Total number of booking holds created",
			ConstLabels: constLabels,
		}),

		HoldsExpiredTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "ledger_holds_expired_total",
			Help:        "Total number of holds removed by the expiry sweep",
			ConstLabels: constLabels,
		}),

		PaymentsConfirmedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "ledger_payments_confirmed_total",
			Help:        "Total number of bookings transitioned to PAID",
			ConstLabels: constLabels,
		}),

		CancellationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "ledger_cancellations_total",
			Help:        "Total number of pending bookings cancelled by users",
			ConstLabels: constLabels,
		}),

		AdminRemovalsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "ledger_admin_removals_total",
			Help:        "Total number of bookings removed by administrators",
			ConstLabels: constLabels,
		}),

		LiveBookings: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "ledger_live_bookings",
			Help:        "Current number of live bookings (pending holds and paid)",
			ConstLabels: constLabels,
		}),
	}
}

// RecordHTTPRequest учитывает выполненный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordHoldCreated учитывает созданный hold
func (m *Metrics) RecordHoldCreated() {
	m.HoldsCreatedTotal.Inc()
	m.LiveBookings.Inc()
}

// RecordHoldsExpired учитывает n удаленных по таймауту holds
func (m *Metrics) RecordHoldsExpired(n int) {
	if n <= 0 {
		return
	}
	m.HoldsExpiredTotal.Add(float64(n))
	m.LiveBookings.Sub(float64(n))
}

// RecordPaymentConfirmed учитывает подтвержденную оплату
func (m *Metrics) RecordPaymentConfirmed() {
	m.PaymentsConfirmedTotal.Inc()
}

// RecordCancellation учитывает отмену pending-бронирования
func (m *Metrics) RecordCancellation() {
	m.CancellationsTotal.Inc()
	m.LiveBookings.Dec()
}

// RecordAdminRemoval учитывает административное удаление
func (m *Metrics) RecordAdminRemoval() {
	m.AdminRemovalsTotal.Inc()
	m.LiveBookings.Dec()
}
