// Package metrics defines the Prometheus instruments exposed on /metrics and
// an Echo middleware that feeds the request-level ones.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "localfarm"

var (
	// RequestDurationHistogram tracks how long HTTP requests take
	RequestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// APIRequestCounter counts API requests by route
	APIRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path"},
	)

	// APIErrorCounter counts error responses by route and status
	APIErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of API errors",
		},
		[]string{"method", "path", "status"},
	)

	// ProductApprovalCounter counts catalog approval actions
	ProductApprovalCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_approvals_total",
		Help:      "Total number of product approvals",
	})

	// OrdersPlacedCounter counts orders by delivery method
	OrdersPlacedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed",
		},
		[]string{"method"},
	)
)

// Middleware records request count, duration and error counts per route.
// The registered route path is used as the label, not the raw URL, so
// /products/42 and /products/7 share a series.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			method := c.Request().Method
			path := c.Path()
			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}
			statusLabel := strconv.Itoa(status)

			APIRequestCounter.WithLabelValues(method, path).Inc()
			RequestDurationHistogram.WithLabelValues(method, path, statusLabel).
				Observe(time.Since(start).Seconds())
			if status >= 400 {
				APIErrorCounter.WithLabelValues(method, path, statusLabel).Inc()
			}

			return err
		}
	}
}
