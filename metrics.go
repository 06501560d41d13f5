package tagscan

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics
// from the cache pipeline. Implement this interface to integrate with
// monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordPackageScan is called after each package finishes, whether
	// or not some of its entries failed.
	RecordPackageScan(entries int, duration time.Duration)

	// RecordEntryReadFailure is called for every entry that had to be
	// skipped because its bytes could not be read.
	RecordEntryReadFailure()

	// RecordCacheLoad is called after a load attempt.
	// err is nil if an existing artifact was used.
	RecordCacheLoad(duration time.Duration, err error)

	// RecordCacheWrite is called after the artifact write.
	RecordCacheWrite(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPackageScan(int, time.Duration)  {}
func (NoopMetricsCollector) RecordEntryReadFailure()               {}
func (NoopMetricsCollector) RecordCacheLoad(time.Duration, error)  {}
func (NoopMetricsCollector) RecordCacheWrite(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PackagesScanned   atomic.Int64
	EntriesScanned    atomic.Int64
	ScanTotalNanos    atomic.Int64
	EntryReadFailures atomic.Int64
	CacheLoads        atomic.Int64
	CacheLoadErrors   atomic.Int64
	CacheWrites       atomic.Int64
	CacheWriteErrors  atomic.Int64
}

// RecordPackageScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPackageScan(entries int, duration time.Duration) {
	b.PackagesScanned.Add(1)
	b.EntriesScanned.Add(int64(entries))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
}

// RecordEntryReadFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEntryReadFailure() {
	b.EntryReadFailures.Add(1)
}

// RecordCacheLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheLoad(duration time.Duration, err error) {
	b.CacheLoads.Add(1)
	if err != nil {
		b.CacheLoadErrors.Add(1)
	}
}

// RecordCacheWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheWrite(duration time.Duration, err error) {
	b.CacheWrites.Add(1)
	if err != nil {
		b.CacheWriteErrors.Add(1)
	}
}
