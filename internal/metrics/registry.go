// Package metrics exposes the store pipeline counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "callstate"

// Registry owns a Prometheus registry with the pipeline metrics and the Go runtime
// collectors. It implements port.Metrics.
type Registry struct {
	registry *prometheus.Registry

	dispatched *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	throttled  *prometheus.CounterVec
	failures   *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_dispatched_total",
			Help:      "Actions that reached the reducer.",
		}, []string{"domain", "kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent in the pipeline after the metrics stage.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05},
		}, []string{"domain"}),
		throttled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_throttled_total",
			Help:      "Actions dropped by the throttle.",
		}, []string{"key"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Calling side effects that returned an error.",
		}, []string{"operation"}),
	}

	r.registry.MustRegister(
		r.dispatched,
		r.duration,
		r.throttled,
		r.failures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Registry) ActionDispatched(domain, kind string, took time.Duration) {
	r.dispatched.WithLabelValues(domain, kind).Inc()
	r.duration.WithLabelValues(domain).Observe(took.Seconds())
}

func (r *Registry) ActionThrottled(key string) {
	r.throttled.WithLabelValues(key).Inc()
}

func (r *Registry) SideEffectFailed(operation string) {
	r.failures.WithLabelValues(operation).Inc()
}

// PrometheusRegistry returns the underlying registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
