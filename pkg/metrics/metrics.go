package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Бизнес-метрики
	EligibilityEvaluations *prometheus.CounterVec
	BookingsCreated        *prometheus.CounterVec
	CustomRequests         *prometheus.CounterVec
	CustomRequestsExpired  prometheus.Counter

	// Connection pool
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Gauge
	DBQueryDuration   *prometheus.HistogramVec
}

// New регистрирует метрики в глобальном registry (его отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном registry
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Общее количество HTTP запросов",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Время обработки HTTP запросов в секундах",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),

		EligibilityEvaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_eligibility_evaluations_total",
			Help:        "Результаты проверки доступности слотов по статусам",
			ConstLabels: labels,
		}, []string{"status"}),

		BookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Количество созданных бронирований",
			ConstLabels: labels,
		}, []string{"kind"}),

		CustomRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "custom_booking_requests_total",
			Help:        "Количество индивидуальных запросов на бронирование",
			ConstLabels: labels,
		}, []string{"conflict"}),

		CustomRequestsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name:        "custom_booking_requests_expired_total",
			Help:        "Количество индивидуальных запросов, переведенных в expired",
			ConstLabels: labels,
		}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Количество открытых соединений с БД",
			ConstLabels: labels,
		}),

		DBInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Количество используемых соединений",
			ConstLabels: labels,
		}),

		DBIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Количество простаивающих соединений",
			ConstLabels: labels,
		}),

		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Сколько раз пришлось ждать свободное соединение",
			ConstLabels: labels,
		}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Время выполнения запросов к БД",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: labels,
		}, []string{"operation"}),
	}
}

// ObserveClassification учитывает результат проверки слота
// Методы Observe* допускают nil-получатель, когда метрики выключены
func (m *Metrics) ObserveClassification(status string) {
	if m == nil {
		return
	}
	m.EligibilityEvaluations.WithLabelValues(status).Inc()
}

// ObserveBookingCreated учитывает созданное бронирование
func (m *Metrics) ObserveBookingCreated(isPrivate bool) {
	if m == nil {
		return
	}
	kind := "group"
	if isPrivate {
		kind = "private"
	}
	m.BookingsCreated.WithLabelValues(kind).Inc()
}

// ObserveCustomRequest учитывает индивидуальный запрос
func (m *Metrics) ObserveCustomRequest(hasConflict bool) {
	if m == nil {
		return
	}
	m.CustomRequests.WithLabelValues(strconv.FormatBool(hasConflict)).Inc()
}

// ObserveExpiredRequests учитывает запросы, закрытые по сроку
func (m *Metrics) ObserveExpiredRequests(n int64) {
	if m == nil {
		return
	}
	m.CustomRequestsExpired.Add(float64(n))
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
