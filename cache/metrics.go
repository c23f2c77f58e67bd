package cache

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters a Cache increments, mirroring the pattern
// pebble's wal package uses to expose an optional prometheus.Histogram
// field on its own Metrics struct. A caller registers these with its own
// prometheus.Registerer; a nil *Metrics (the default) disables counting
// entirely.
type Metrics struct {
	Hits      prometheus.Counter
	Misses    prometheus.Counter
	Evictions prometheus.Counter
}

// NewMetrics builds a ready-to-register Metrics with the given constant
// labels (e.g. the container identifier) attached to every counter.
func NewMetrics(namespace, subsystem string, constLabels prometheus.Labels) *Metrics {
	return &Metrics{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "cache_hits_total",
			Help:        "Number of cache lookups served without a load call.",
			ConstLabels: constLabels,
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "cache_misses_total",
			Help:        "Number of cache lookups that required a load call.",
			ConstLabels: constLabels,
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "cache_evictions_total",
			Help:        "Number of entries evicted to make room for a new one.",
			ConstLabels: constLabels,
		}),
	}
}

// Collectors returns the individual counters for registration with a
// prometheus.Registerer.
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{m.Hits, m.Misses, m.Evictions}
}
