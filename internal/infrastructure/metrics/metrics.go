package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salesops"

// Metrics owns a dedicated registry so tests can build isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	Observers      prometheus.Gauge
	EventsSent     *prometheus.CounterVec
	EventsDropped  *prometheus.CounterVec
	Reconciled     prometheus.Counter
	PipelineErrors *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		Observers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "realtime_observers",
			Help:      "Connected event stream observers.",
		}),
		EventsSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Domain events published by name.",
		}, []string{"event"}),
		EventsDropped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Event deliveries skipped because an observer buffer was full.",
		}, []string{"event"}),
		Reconciled: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handover_projects_reconciled_total",
			Help:      "Projects created by the handover recovery sweep.",
		}),
		PipelineErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_errors_total",
			Help:      "Rejected pipeline operations by error kind.",
		}, []string{"kind"}),
	}
}

func (m *Metrics) SetObservers(n int)         { m.Observers.Set(float64(n)) }
func (m *Metrics) EventPublished(name string) { m.EventsSent.WithLabelValues(name).Inc() }
func (m *Metrics) EventDropped(name string)   { m.EventsDropped.WithLabelValues(name).Inc() }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
