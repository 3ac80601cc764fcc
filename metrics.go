package tabgo

import (
	"sync/atomic"
	"time"
)

// QueryKind identifies one of the read query kernels.
type QueryKind int

// Constants representing the read query kernels.
const (
	// QueryColumnSum is the unpredicated single-column sum.
	QueryColumnSum QueryKind = iota

	// QueryPredicatedColumnSum is the two-predicate single-column sum.
	QueryPredicatedColumnSum

	// QueryPredicatedAllColumnsSum is the single-predicate whole-row sum.
	QueryPredicatedAllColumnsSum
)

// String returns a string representation of the QueryKind.
func (k QueryKind) String() string {
	switch k {
	case QueryColumnSum:
		return "ColumnSum"
	case QueryPredicatedColumnSum:
		return "PredicatedColumnSum"
	case QueryPredicatedAllColumnsSum:
		return "PredicatedAllColumnsSum"
	default:
		return "Unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    loadCounter    prometheus.Counter
//	    queryHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordQuery(kind tabgo.QueryKind, duration time.Duration) {
//	    p.queryHistogram.Observe(duration.Seconds())
//	    // ... record kind, etc.
//	}
type MetricsCollector interface {
	// RecordLoad is called after each load operation. rows and cols
	// describe the loaded dataset, err is nil if successful.
	RecordLoad(rows, cols int, duration time.Duration, err error)

	// RecordQuery is called after each read query kernel.
	RecordQuery(kind QueryKind, duration time.Duration)

	// RecordUpdate is called after each update kernel.
	// rows is the number of rows updated.
	RecordUpdate(rows int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(QueryKind, time.Duration)      {}
func (NoopMetricsCollector) RecordUpdate(int, time.Duration)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadTotalNanos   atomic.Int64
	QueryCount       atomic.Int64
	QueryTotalNanos  atomic.Int64
	UpdateCount      atomic.Int64
	UpdateRows       atomic.Int64
	UpdateTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(rows, cols int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(kind QueryKind, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(rows int, duration time.Duration) {
	b.UpdateCount.Add(1)
	b.UpdateRows.Add(int64(rows))
	b.UpdateTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadAvgNanos:   avgNanos(b.LoadTotalNanos.Load(), b.LoadCount.Load()),
		QueryCount:     b.QueryCount.Load(),
		QueryAvgNanos:  avgNanos(b.QueryTotalNanos.Load(), b.QueryCount.Load()),
		UpdateCount:    b.UpdateCount.Load(),
		UpdateRows:     b.UpdateRows.Load(),
		UpdateAvgNanos: avgNanos(b.UpdateTotalNanos.Load(), b.UpdateCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount      int64
	LoadErrors     int64
	LoadAvgNanos   int64
	QueryCount     int64
	QueryAvgNanos  int64
	UpdateCount    int64
	UpdateRows     int64
	UpdateAvgNanos int64
}
