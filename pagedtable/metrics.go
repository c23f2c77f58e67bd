package pagedtable

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aeriksson/blocktable/cache"
)

// Metrics holds the counters a Table and its underlying page cache
// increment as they run, following the same optional prometheus.Counter
// field pattern pebble's wal.Metrics uses for FsyncLatency.
type Metrics struct {
	Cache *cache.Metrics

	Extends     prometheus.Counter
	SyncReads   prometheus.Counter
	BgReadHits  prometheus.Counter
	Prefetches  prometheus.Counter
	WriteDrains prometheus.Counter
}

// NewMetrics builds a ready-to-register Metrics, including its embedded
// cache.Metrics, with the given constant labels attached.
func NewMetrics(namespace, subsystem string, constLabels prometheus.Labels) *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		})
	}
	return &Metrics{
		Cache:       cache.NewMetrics(namespace, subsystem, constLabels),
		Extends:     counter("pagedtable_block_extends_total", "Number of trailing blocks created."),
		SyncReads:   counter("pagedtable_sync_reads_total", "Number of synchronous block reads issued."),
		BgReadHits:  counter("pagedtable_bg_read_hits_total", "Number of loads served by an in-flight prefetch."),
		Prefetches:  counter("pagedtable_prefetches_total", "Number of one-ahead prefetch reads issued."),
		WriteDrains: counter("pagedtable_write_drains_total", "Number of dirty-page background writes issued."),
	}
}

// Collectors returns every counter for registration with a
// prometheus.Registerer.
func (m *Metrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	cs := []prometheus.Collector{m.Extends, m.SyncReads, m.BgReadHits, m.Prefetches, m.WriteDrains}
	return append(cs, m.Cache.Collectors()...)
}

func (t *Table) metricExtend() {
	if t.metrics != nil {
		t.metrics.Extends.Inc()
	}
}

func (t *Table) metricSyncRead() {
	if t.metrics != nil {
		t.metrics.SyncReads.Inc()
	}
}

func (t *Table) metricBgReadHit() {
	if t.metrics != nil {
		t.metrics.BgReadHits.Inc()
	}
}

func (t *Table) metricPrefetch() {
	if t.metrics != nil {
		t.metrics.Prefetches.Inc()
	}
}

func (t *Table) metricWriteDrain() {
	if t.metrics != nil {
		t.metrics.WriteDrains.Inc()
	}
}
