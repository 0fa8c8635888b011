// Package metrics provides Prometheus instrumentation for the shop.
//
// Wire it once in the route setup:
//
//	r.Use(metrics.Middleware())
//	r.HandleFunc("/metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks HTTP request latency by method/path/status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sweetshop",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sweetshop",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks requests currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "sweetshop",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// PurchasesTotal counts successful purchases.
	PurchasesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sweetshop",
		Subsystem: "shop",
		Name:      "purchases_total",
		Help:      "Total successful purchase operations.",
	})

	// PurchaseFailures counts rejected purchases by reason.
	PurchaseFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sweetshop",
			Subsystem: "shop",
			Name:      "purchase_failures_total",
			Help:      "Rejected purchase operations.",
		},
		[]string{"reason"},
	)

	// OrdersTotal counts recorded orders.
	OrdersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sweetshop",
		Subsystem: "shop",
		Name:      "orders_total",
		Help:      "Total orders recorded.",
	})
)

// Reason labels for PurchaseFailures.
const (
	ReasonOutOfStock        = "out_of_stock"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonNotFound          = "not_found"
	ReasonInvalid           = "invalid"
	ReasonInternal          = "internal"
)

// DefaultRegistry is the registry everything above is registered on.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		PurchasesTotal,
		PurchaseFailures,
		OrdersTotal,
	)
}

// responseRecorder captures the status code written downstream.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration, total and in-flight metrics per request.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the Prometheus metrics page; mount on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
