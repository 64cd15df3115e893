// Package promcollector implements ratingchain.MetricsCollector on top of
// Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := promcollector.New(reg)
//	if err != nil {
//	    // handle error
//	}
//	c := ratingchain.New(ratingchain.WithMetricsCollector(mc))
//
// A single collector may be shared by any number of chains.
package promcollector

import (
	"time"

	"github.com/hupe1980/ratingchain"
	"github.com/prometheus/client_golang/prometheus"
)

// Compile time check to ensure Collector satisfies ratingchain.MetricsCollector.
var _ ratingchain.MetricsCollector = (*Collector)(nil)

const namespace = "ratingchain"

// Operation label values. Query operations use the ratingchain.Op* names.
const (
	opInsert     = "insert"
	opUpdate     = "update"
	opRemove     = "remove"
	opSimilarity = "similarity"
	opReverse    = "reverse"
)

// Collector records chain operations as Prometheus metrics.
type Collector struct {
	opLatency    *prometheus.HistogramVec
	ops          *prometheus.CounterVec
	queryResults *prometheus.HistogramVec
	shared       prometheus.Histogram
	undefined    prometheus.Counter
	relinked     prometheus.Counter
}

// New creates a Collector and registers its metrics on reg.
// A nil reg registers on prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of chain operations",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"op"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total chain operations by outcome",
		}, []string{"op", "status"}),
		queryResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_results",
			Help:      "Length of chains produced by queries",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"op"}),
		shared: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "similarity_shared_movies",
			Help:      "Movies rated by both chains of a correlation",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		undefined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "similarity_undefined_total",
			Help:      "Correlations that were undefined",
		}),
		relinked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reverse_relinked_records_total",
			Help:      "Records relinked by reversals",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.opLatency, c.ops, c.queryResults, c.shared, c.undefined, c.relinked,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (c *Collector) observe(op string, d time.Duration, st string) {
	c.opLatency.WithLabelValues(op).Observe(d.Seconds())
	c.ops.WithLabelValues(op, st).Inc()
}

// RecordInsert implements ratingchain.MetricsCollector.
func (c *Collector) RecordInsert(d time.Duration, err error) {
	c.observe(opInsert, d, status(err))
}

// RecordUpdate implements ratingchain.MetricsCollector.
func (c *Collector) RecordUpdate(d time.Duration, err error) {
	c.observe(opUpdate, d, status(err))
}

// RecordRemove implements ratingchain.MetricsCollector.
func (c *Collector) RecordRemove(d time.Duration, found bool) {
	st := "ok"
	if !found {
		st = "miss"
	}
	c.observe(opRemove, d, st)
}

// RecordQuery implements ratingchain.MetricsCollector.
func (c *Collector) RecordQuery(op string, results int, d time.Duration) {
	c.observe(op, d, "ok")
	c.queryResults.WithLabelValues(op).Observe(float64(results))
}

// RecordSimilarity implements ratingchain.MetricsCollector.
func (c *Collector) RecordSimilarity(shared int, d time.Duration, err error) {
	st := "ok"
	if err != nil {
		st = "undefined"
		c.undefined.Inc()
	}
	c.observe(opSimilarity, d, st)
	c.shared.Observe(float64(shared))
}

// RecordReverse implements ratingchain.MetricsCollector.
func (c *Collector) RecordReverse(records int, d time.Duration) {
	c.observe(opReverse, d, "ok")
	c.relinked.Add(float64(records))
}
