package metrics

import (
	"net/http"
	"strconv"
	"time"

	contractDomain "nextgear-contracts/internal/domain/contract"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "contracts"

// Collector owns a private registry so tests can build as many as they like.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	created      *prometheus.CounterVec
	rejected     *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"method", "route"},
		),
		created: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "created_total",
				Help:      "Contracts created, by type and resulting status",
			},
			[]string{"type", "status"},
		),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejected_total",
				Help:      "Create/update requests rejected with InvalidArgument",
			},
			[]string{"operation"},
		),
	}
	c.registry.MustRegister(
		c.httpRequests, c.httpDuration, c.created, c.rejected,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) RecordCreated(ct *contractDomain.Contract) {
	if c == nil || ct == nil {
		return
	}
	status := "UNSET"
	if ct.Status != nil {
		status = string(*ct.Status)
	}
	c.created.WithLabelValues(string(ct.Type), status).Inc()
}

func (c *Collector) RecordRejected(operation string) {
	if c == nil {
		return
	}
	c.rejected.WithLabelValues(operation).Inc()
}

// Middleware records every request against its route template, not the raw path.
func (c *Collector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			if c == nil {
				return next(ec)
			}
			start := time.Now()
			err := next(ec)
			if err != nil {
				ec.Error(err)
			}

			route := ec.Path()
			if route == "" {
				route = "unmatched"
			}
			method := ec.Request().Method
			code := ec.Response().Status
			c.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
			c.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
