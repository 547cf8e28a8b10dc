package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках вызовы игнорируются
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	timelineSlots    prometheus.Histogram
	overlapConflicts prometheus.Counter
	cacheRequests    *prometheus.CounterVec
}

// New регистрирует коллекторы в reg
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		timelineSlots: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "calendar_timeline_slots",
			Help:        "Number of hourly slots per generated timeline",
			ConstLabels: constLabels,
			Buckets:     []float64{6, 8, 10, 12, 14, 16, 18, 20, 24},
		}),
		overlapConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name:        "calendar_overlap_conflicts_total",
			Help:        "Hours occupied by more than one appointment",
			ConstLabels: constLabels,
		}),
		cacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "working_hours_cache_requests_total",
			Help:        "Working hours cache lookups by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveTimeline учитывает сгенерированный таймлайн
func (m *Metrics) ObserveTimeline(slots, conflicts int) {
	if m == nil {
		return
	}
	m.timelineSlots.Observe(float64(slots))
	if conflicts > 0 {
		m.overlapConflicts.Add(float64(conflicts))
	}
}

// ObserveCache учитывает обращение к кэшу рабочих часов
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheRequests.WithLabelValues(result).Inc()
}
