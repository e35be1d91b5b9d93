package observability

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "periodic"

// Metrics implements every hook interface on a private Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry

	classified    *prometheus.CounterVec
	renders       *prometheus.CounterVec
	renderSeconds *prometheus.HistogramVec
	cacheOps      *prometheus.CounterVec
	cacheBytes    prometheus.Counter
	requests      *prometheus.CounterVec
	requestTime   *prometheus.HistogramVec
	inflight      prometheus.Gauge
	httpErrors    *prometheus.CounterVec
}

// NewMetrics creates the collectors, including the Go runtime and process
// collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		classified: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "classify_total",
			Help: "Classifications run, by category filter.",
		}, []string{"filter"}),
		renders: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "render_total",
			Help: "Render calls, by outcome.",
		}, []string{"outcome"}),
		renderSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "render_duration_seconds",
			Help:    "Render latency, by requested formats.",
			Buckets: prometheus.DefBuckets,
		}, []string{"formats"}),
		cacheOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_operations_total",
			Help: "Cache lookups and writes, by key type and result.",
		}, []string{"key_type", "result"}),
		cacheBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_written_bytes_total",
			Help: "Bytes written to the cache.",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "HTTP responses, by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inflight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "http_requests_in_flight",
			Help: "Requests currently being served.",
		}),
		httpErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_errors_total",
			Help: "Errors returned to clients, by route.",
		}, []string{"route"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) OnClassifyStart(context.Context, string) {}

func (m *Metrics) OnClassifyComplete(_ context.Context, filter string, _ int, _ time.Duration) {
	m.classified.WithLabelValues(filter).Inc()
}

func (m *Metrics) OnRenderStart(context.Context, []string) {}

func (m *Metrics) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.renders.WithLabelValues(outcome).Inc()
	m.renderSeconds.WithLabelValues(strings.Join(formats, ",")).Observe(d.Seconds())
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheOps.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheOps.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.Add(float64(size))
}

func (m *Metrics) OnRequest(context.Context, string, string) {
	m.inflight.Inc()
}

func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.inflight.Dec()
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestTime.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) OnError(_ context.Context, _, route string, _ error) {
	m.httpErrors.WithLabelValues(route).Inc()
}

var _ Hooks = (*Metrics)(nil)
