package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OperationSignup     = "signup"
	OperationUnregister = "unregister"
)

// Collector owns the service's Prometheus registry.
type Collector struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	rosterSize *prometheus.GaugeVec
	capacity   *prometheus.GaugeVec
}

func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "activities",
			Name:      "enrollment_requests_total",
			Help:      "Signup and unregister requests by outcome.",
		}, []string{"operation", "outcome"}),
		rosterSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "activities",
			Name:      "roster_size",
			Help:      "Current number of participants per activity.",
		}, []string{"activity"}),
		capacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "activities",
			Name:      "max_participants",
			Help:      "Configured capacity per activity.",
		}, []string{"activity"}),
	}
	c.registry.MustRegister(
		c.requests,
		c.rosterSize,
		c.capacity,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveRequest counts one enrollment request. outcome is "ok" or an error class.
func (c *Collector) ObserveRequest(operation, outcome string) {
	c.requests.WithLabelValues(operation, outcome).Inc()
}

// ObserveRoster sets the gauges of one activity.
func (c *Collector) ObserveRoster(name string, size, capacity int) {
	c.rosterSize.WithLabelValues(name).Set(float64(size))
	c.capacity.WithLabelValues(name).Set(float64(capacity))
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for gathering outside the handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
