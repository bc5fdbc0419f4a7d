package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	PostViewsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "post_views_total",
			Help: "Total post views registered",
		},
	)

	PlayerUpgradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "player_upgrades_total",
			Help: "Total upgrade attempts by outcome",
		},
		[]string{"outcome"}, // upgraded|rejected
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(RequestLatency)
		prometheus.MustRegister(PostViewsTotal)
		prometheus.MustRegister(PlayerUpgradesTotal)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := routePattern(r)
		status := strconv.Itoa(rec.status)
		RequestsTotal.WithLabelValues(route, r.Method, status).Inc()
		RequestLatency.WithLabelValues(route, r.Method, status).
			Observe(time.Since(start).Seconds())
	})
}

// The chi route pattern is only filled in after routing, so it is read once
// the request has been handled.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if patt := rc.RoutePattern(); patt != "" {
			return patt
		}
	}
	return r.URL.Path
}
