package schedgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called once after the dataset load.
	// count is the number of records loaded, err is nil if successful.
	RecordLoad(count int, duration time.Duration, err error)

	// RecordFetch is called after each fetch.
	// cached indicates whether the record was served from the memo cache.
	RecordFetch(duration time.Duration, cached bool, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordFetch(time.Duration, bool, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadTotalNanos  atomic.Int64
	FetchCount      atomic.Int64
	FetchHits       atomic.Int64
	FetchErrors     atomic.Int64
	FetchTotalNanos atomic.Int64
}

// RecordLoad records a dataset load.
func (c *BasicMetricsCollector) RecordLoad(_ int, duration time.Duration, err error) {
	c.LoadCount.Add(1)
	c.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.LoadErrors.Add(1)
	}
}

// RecordFetch records a fetch.
func (c *BasicMetricsCollector) RecordFetch(duration time.Duration, cached bool, err error) {
	c.FetchCount.Add(1)
	c.FetchTotalNanos.Add(duration.Nanoseconds())
	if cached {
		c.FetchHits.Add(1)
	}
	if err != nil {
		c.FetchErrors.Add(1)
	}
}
