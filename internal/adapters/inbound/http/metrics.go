package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exposed on /metrics. Each server owns its
// registry.
type Metrics struct {
	registry *prometheus.Registry
	rentals  *prometheus.CounterVec
	response *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rentals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rentacar_rentals_total",
			Help: "Counter of rental attempts by category and outcome",
		}, []string{"category", "outcome"}),
		response: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rentacar_http_request_duration_seconds",
			Help:    "Histogram of HTTP response times in seconds",
			Buckets: []float64{.001, .003, .005, .01, .025, .05, .1, .2, .5, 1, 2, 5},
		}, []string{"path", "method", "status"}),
	}
	m.registry.MustRegister(m.rentals, m.response)
	return m
}

// Registry returns the registry backing /metrics.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) observeRental(category, outcome string) {
	m.rentals.WithLabelValues(category, outcome).Inc()
}

// Middleware implements mux.MiddlewareFunc.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = strings.TrimSuffix(tpl, "/")
			}
		}
		srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			m.response.WithLabelValues(path, r.Method, fmt.Sprintf("%d", srw.status)).
				Observe(time.Since(start).Seconds())
		}()

		next.ServeHTTP(srw, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
