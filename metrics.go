package ratingchain

import (
	"sync/atomic"
	"time"
)

// Query operation names passed to MetricsCollector.RecordQuery.
const (
	OpSelectRange = "select_range"
	OpTopN        = "top_n"
	OpBottomN     = "bottom_n"
	OpClone       = "clone"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package promcollector).
type MetricsCollector interface {
	// RecordInsert is called after each Insert.
	// err is nil if the record was linked into the chain.
	RecordInsert(duration time.Duration, err error)

	// RecordUpdate is called after each SetValue.
	RecordUpdate(duration time.Duration, err error)

	// RecordRemove is called after each Remove.
	RecordRemove(duration time.Duration, found bool)

	// RecordQuery is called after each query that builds a new chain.
	// op is one of the Op* constants, results is the length of the new chain.
	RecordQuery(op string, results int, duration time.Duration)

	// RecordSimilarity is called after each Correlation.
	// shared is the number of movies rated by both chains.
	RecordSimilarity(shared int, duration time.Duration, err error)

	// RecordReverse is called after each reversal with the number of relinked records.
	RecordReverse(records int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)          {}
func (NoopMetricsCollector) RecordUpdate(time.Duration, error)          {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool)           {}
func (NoopMetricsCollector) RecordQuery(string, int, time.Duration)     {}
func (NoopMetricsCollector) RecordSimilarity(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordReverse(int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount          atomic.Int64
	InsertErrors         atomic.Int64
	InsertTotalNanos     atomic.Int64
	UpdateCount          atomic.Int64
	UpdateErrors         atomic.Int64
	RemoveCount          atomic.Int64
	RemoveMisses         atomic.Int64
	QueryCount           atomic.Int64
	QueryResults         atomic.Int64
	QueryTotalNanos      atomic.Int64
	SimilarityCount      atomic.Int64
	SimilarityUndefined  atomic.Int64
	SimilarityShared     atomic.Int64
	SimilarityTotalNanos atomic.Int64
	ReverseCount         atomic.Int64
	ReverseRecords       atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(duration time.Duration, err error) {
	b.UpdateCount.Add(1)
	if err != nil {
		b.UpdateErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, found bool) {
	b.RemoveCount.Add(1)
	if !found {
		b.RemoveMisses.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(op string, results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// RecordSimilarity implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSimilarity(shared int, duration time.Duration, err error) {
	b.SimilarityCount.Add(1)
	b.SimilarityShared.Add(int64(shared))
	b.SimilarityTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SimilarityUndefined.Add(1)
	}
}

// RecordReverse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReverse(records int, duration time.Duration) {
	b.ReverseCount.Add(1)
	b.ReverseRecords.Add(int64(records))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:         b.InsertCount.Load(),
		InsertErrors:        b.InsertErrors.Load(),
		InsertAvgNanos:      avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		UpdateCount:         b.UpdateCount.Load(),
		UpdateErrors:        b.UpdateErrors.Load(),
		RemoveCount:         b.RemoveCount.Load(),
		RemoveMisses:        b.RemoveMisses.Load(),
		QueryCount:          b.QueryCount.Load(),
		QueryResults:        b.QueryResults.Load(),
		QueryAvgNanos:       avgNanos(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		SimilarityCount:     b.SimilarityCount.Load(),
		SimilarityUndefined: b.SimilarityUndefined.Load(),
		SimilarityAvgShared: avg(b.SimilarityShared.Load(), b.SimilarityCount.Load()),
		SimilarityAvgNanos:  avgNanos(b.SimilarityTotalNanos.Load(), b.SimilarityCount.Load()),
		ReverseCount:        b.ReverseCount.Load(),
		ReverseRecords:      b.ReverseRecords.Load(),
	}
}

// Reset clears all counters.
func (b *BasicMetricsCollector) Reset() {
	b.InsertCount.Store(0)
	b.InsertErrors.Store(0)
	b.InsertTotalNanos.Store(0)
	b.UpdateCount.Store(0)
	b.UpdateErrors.Store(0)
	b.RemoveCount.Store(0)
	b.RemoveMisses.Store(0)
	b.QueryCount.Store(0)
	b.QueryResults.Store(0)
	b.QueryTotalNanos.Store(0)
	b.SimilarityCount.Store(0)
	b.SimilarityUndefined.Store(0)
	b.SimilarityShared.Store(0)
	b.SimilarityTotalNanos.Store(0)
	b.ReverseCount.Store(0)
	b.ReverseRecords.Store(0)
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

func avg(total, count int64) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// BasicMetricsStats is a snapshot of metrics.
type BasicMetricsStats struct {
	InsertCount         int64
	InsertErrors        int64
	InsertAvgNanos      int64
	UpdateCount         int64
	UpdateErrors        int64
	RemoveCount         int64
	RemoveMisses        int64
	QueryCount          int64
	QueryResults        int64
	QueryAvgNanos       int64
	SimilarityCount     int64
	SimilarityUndefined int64
	SimilarityAvgShared float64
	SimilarityAvgNanos  int64
	ReverseCount        int64
	ReverseRecords      int64
}
