// Package metrics exposes storefront counters in the Prometheus format.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const namespace = "storefront"

// Recorder owns a private registry so tests can build as many as they need.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	ordersPlaced     prometheus.Counter
	orderValue       prometheus.Histogram
	orderItems       prometheus.Histogram
	checkoutFailures *prometheus.CounterVec
	cartItemsAdded   prometheus.Counter
	loginAttempts    *prometheus.CounterVec
	usersRegistered  prometheus.Counter
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers every collector, including the Go and process collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "route"},
		),
		ordersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders created by checkout.",
		}),
		orderValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "total_amount",
			Help:      "Order totals in the store currency.",
			Buckets:   prometheus.ExponentialBuckets(100, 2, 12),
		}),
		orderItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "line_items",
			Help:      "Number of lines per order.",
			Buckets:   prometheus.LinearBuckets(1, 2, 10),
		}),
		checkoutFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "orders",
				Name:      "checkout_failures_total",
				Help:      "Checkouts that did not produce an order.",
			},
			[]string{"reason"},
		),
		cartItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "items_added_total",
			Help:      "Add-to-cart actions.",
		}),
		loginAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "login_attempts_total",
				Help:      "Login attempts by credential kind and outcome.",
			},
			[]string{"kind", "success"},
		),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "registrations_total",
			Help:      "Completed registrations.",
		}),
	}

	r.registry.MustRegister(
		r.httpRequests,
		r.httpDuration,
		r.ordersPlaced,
		r.orderValue,
		r.orderItems,
		r.checkoutFailures,
		r.cartItemsAdded,
		r.loginAttempts,
		r.usersRegistered,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return r
}

// NewMetricsRecorder exposes the Recorder as the domain interface for Fx.
func NewMetricsRecorder(r *Recorder) service.MetricsRecorder {
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// ObserveHTTP records one served request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (r *Recorder) ObserveHTTP(method, route string, status int, duration time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (r *Recorder) OrderPlaced(total decimal.Decimal, itemCount int) {
	r.ordersPlaced.Inc()
	r.orderValue.Observe(total.InexactFloat64())
	r.orderItems.Observe(float64(itemCount))
}

func (r *Recorder) CheckoutFailed(reason string) {
	r.checkoutFailures.WithLabelValues(reason).Inc()
}

func (r *Recorder) CartItemAdded() {
	r.cartItemsAdded.Inc()
}

func (r *Recorder) LoginAttempt(kind string, success bool) {
	r.loginAttempts.WithLabelValues(kind, strconv.FormatBool(success)).Inc()
}

func (r *Recorder) UserRegistered() {
	r.usersRegistered.Inc()
}

// RegisterDBStats exports the connection pool statistics of db.
func (r *Recorder) RegisterDBStats(db *sql.DB, dbName string) error {
	if err := r.registry.Register(collectors.NewDBStatsCollector(db, dbName)); err != nil {
		return errors.Wrap(err, "failed to register db stats collector")
	}

	return nil
}
