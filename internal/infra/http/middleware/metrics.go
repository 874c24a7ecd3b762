package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	emailsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_processed_total",
			Help: "Total number of inbound emails processed",
		},
		[]string{"intent", "source"},
	)

	emailsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_skipped_total",
			Help: "Total number of duplicate emails skipped",
		},
		[]string{"source"},
	)

	repliesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "replies_sent_total",
			Help: "Total number of replies sent from the dashboards",
		},
		[]string{"record_type"},
	)

	contactsPromoted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_promoted_total",
			Help: "Total number of contacts promoted by the sweep",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordEmailProcessed(intent, source string) {
	emailsProcessed.WithLabelValues(intent, source).Inc()
}

func RecordEmailSkipped(source string) {
	emailsSkipped.WithLabelValues(source).Inc()
}

func RecordReplySent(recordType string) {
	repliesSent.WithLabelValues(recordType).Inc()
}

func RecordContactsPromoted(count int) {
	contactsPromoted.Add(float64(count))
}
