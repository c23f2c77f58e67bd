package table

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds optional prometheus counters for table-level record
// reads and writes. A nil *Metrics (the default) disables all counting.
type Metrics struct {
	Reads  prometheus.Counter
	Writes prometheus.Counter
}

// NewMetrics builds a Metrics with counters registered under the given
// namespace/subsystem and constant labels.
func NewMetrics(namespace, subsystem string, constLabels prometheus.Labels) *Metrics {
	return &Metrics{
		Reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "record_reads_total",
			Help:        "Number of records decoded from this table.",
			ConstLabels: constLabels,
		}),
		Writes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "record_writes_total",
			Help:        "Number of records encoded into this table.",
			ConstLabels: constLabels,
		}),
	}
}

// Collectors returns the non-nil counters, ready to pass to a
// prometheus.Registerer.
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	var cs []prometheus.Collector
	if m.Reads != nil {
		cs = append(cs, m.Reads)
	}
	if m.Writes != nil {
		cs = append(cs, m.Writes)
	}
	return cs
}

func (t *Table[V]) metricRead() {
	if t.metrics != nil && t.metrics.Reads != nil {
		t.metrics.Reads.Inc()
	}
}

func (t *Table[V]) metricWrite() {
	if t.metrics != nil && t.metrics.Writes != nil {
		t.metrics.Writes.Inc()
	}
}
