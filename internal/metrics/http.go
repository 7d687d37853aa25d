// Package metrics provides Prometheus metrics for outbound vso api requests.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "vsometrics"
	subsystem = "vso"

	requestsMetric = "requests_total"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Collector holds metrics of vso api requests.
type Collector struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewCollector creates Collector and registers its metrics in given registry.
func NewCollector(registry *prometheus.Registry) (*Collector, error) {
	if registry == nil {
		return nil, errors.New("registry is required")
	}

	c := &Collector{
		registry: registry,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      requestsMetric,
				Help:      "Number of vso api requests by response status code.",
			},
			[]string{"code"},
		),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of vso api requests until response headers are received.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	for _, m := range []prometheus.Collector{c.requests, c.requestDuration} {
		if err := registry.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Registry returns registry holding collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// HTTPDoer wraps doer, so every request is counted and timed.
func (c *Collector) HTTPDoer(doer HTTPDoer) HTTPDoer {
	return &instrumentedHTTPDoer{
		doer: doer,
		c:    c,
	}
}

// RequestCount returns number of requests made so far.
func (c *Collector) RequestCount() (float64, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return 0, err
	}

	name := prometheus.BuildFQName(namespace, subsystem, requestsMetric)
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}

	return total, nil
}

type instrumentedHTTPDoer struct {
	doer HTTPDoer
	c    *Collector
}

func (d *instrumentedHTTPDoer) Do(r *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := d.doer.Do(r)
	d.c.requestDuration.Observe(time.Since(start).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	d.c.requests.WithLabelValues(code).Inc()

	return resp, err
}
