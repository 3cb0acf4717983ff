package observability

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intranet_http_requests_total",
			Help: "Total number of HTTP requests processed by the intranet backend.",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intranet_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
	wsActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "intranet_ws_active_connections",
			Help: "Number of active websocket connections.",
		},
	)
	notificationsFannedOutTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intranet_notifications_fanned_out_total",
			Help: "Total number of notifications written during fan-out.",
		},
		[]string{"type"},
	)
	notificationFanoutErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "intranet_notification_fanout_errors_total",
			Help: "Total number of failed notification writes during fan-out.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		wsActiveConnections,
		notificationsFannedOutTotal,
		notificationFanoutErrorsTotal,
	)
}

func HTTPMetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "/" {
			route = r.Path
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		httpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}

func IncWSActive() {
	wsActiveConnections.Inc()
}

func DecWSActive() {
	wsActiveConnections.Dec()
}

func IncNotificationFanout(notificationType string) {
	notificationsFannedOutTotal.WithLabelValues(notificationType).Inc()
}

func IncNotificationFanoutError() {
	notificationFanoutErrorsTotal.Inc()
}
