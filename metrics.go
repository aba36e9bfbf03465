package goArgon2

import (
	"sync/atomic"
	"time"
)

// MetricID defines a public type used by goArgon2 APIs.
//
// MetricID values index the counters a [Hasher] maintains when metrics are
// enabled.
type MetricID uint16

const (
	// MetricHashSuccess is an exported constant or variable used by the hashing engine.
	MetricHashSuccess MetricID = iota
	// MetricHashFailure is an exported constant or variable used by the hashing engine.
	MetricHashFailure
	// MetricVerifyMatch is an exported constant or variable used by the hashing engine.
	MetricVerifyMatch
	// MetricVerifyMismatch is an exported constant or variable used by the hashing engine.
	MetricVerifyMismatch
	// MetricVerifyMalformed is an exported constant or variable used by the hashing engine.
	MetricVerifyMalformed
	// MetricRehashNeeded is an exported constant or variable used by the hashing engine.
	MetricRehashNeeded
	// MetricHashLatency is an exported constant or variable used by the hashing engine.
	MetricHashLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics defines a public type used by goArgon2 APIs.
//
// Metrics holds atomic counters and a coarse hash-latency histogram for one
// Hasher. All methods are safe for concurrent use and nil-safe, so a Hasher
// with metrics disabled pays only a nil check.
type Metrics struct {
	enabled    bool
	counters   [metricIDCount]paddedCounter
	histograms [metricIDCount]metricHistogram
}

// MetricsSnapshot defines a public type used by goArgon2 APIs.
//
// MetricsSnapshot is a point-in-time copy of a Hasher's counters; mutating it
// has no effect on the live metrics.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics returns a Metrics set, enabled or not.
func NewMetrics(enabled bool) *Metrics {
	return &Metrics{enabled: enabled}
}

// Enabled reports whether this Metrics set records anything.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc adds one to the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records a hash duration into the latency histogram.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || id != MetricHashLatency {
		return
	}
	atomic.AddUint64(&m.histograms[id].buckets[bucketIndex(d)], 1)
}

// Value returns the current count for id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter and histogram into a MetricsSnapshot.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snap := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, metricIDCount),
		Histograms: make(map[MetricID][]uint64),
	}
	if m == nil {
		return snap
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		snap.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	buckets := make([]uint64, histBucketCount)
	for b := 0; b < histBucketCount; b++ {
		buckets[b] = atomic.LoadUint64(&m.histograms[MetricHashLatency].buckets[b])
	}
	snap.Histograms[MetricHashLatency] = buckets

	return snap
}

// bucketIndex maps a duration to a power-of-four millisecond bucket:
// <1ms, <4ms, <16ms, <64ms, <256ms, <1s, <4s, and everything above.
func bucketIndex(d time.Duration) int {
	ms := d.Milliseconds()
	bound := int64(1)
	for b := 0; b < histBucketCount-1; b++ {
		if ms < bound {
			return b
		}
		bound *= 4
	}
	return histBucketCount - 1
}
