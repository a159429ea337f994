package wordseg

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    segmentCounter   prometheus.Counter
//	    segmentHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSegment(textLen, words int, duration time.Duration, err error) {
//	    p.segmentCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSegment is called after each segmentation, including failed
	// ones. textLen is the input length in bytes, words the number of
	// words produced, err is nil if successful.
	RecordSegment(textLen, words int, duration time.Duration, err error)

	// RecordCacheHit is called when a segmentation is served from the
	// result cache instead of running the search.
	RecordCacheHit(textLen int)

	// RecordScoreSentence is called after each sentence scoring.
	RecordScoreSentence(words int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSegment(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordCacheHit(int)                           {}
func (NoopMetricsCollector) RecordScoreSentence(int, time.Duration)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SegmentCount      atomic.Int64
	SegmentErrors     atomic.Int64
	SegmentWords      atomic.Int64
	SegmentTotalNanos atomic.Int64
	CacheHits         atomic.Int64
	ScoreCount        atomic.Int64
	ScoreTotalNanos   atomic.Int64
}

// RecordSegment implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSegment(textLen, words int, duration time.Duration, err error) {
	b.SegmentCount.Add(1)
	b.SegmentWords.Add(int64(words))
	b.SegmentTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SegmentErrors.Add(1)
	}
}

// RecordCacheHit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheHit(textLen int) {
	b.CacheHits.Add(1)
}

// RecordScoreSentence implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScoreSentence(words int, duration time.Duration) {
	b.ScoreCount.Add(1)
	b.ScoreTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SegmentCount:    b.SegmentCount.Load(),
		SegmentErrors:   b.SegmentErrors.Load(),
		SegmentWords:    b.SegmentWords.Load(),
		SegmentAvgNanos: b.getAvgSegmentNanos(),
		CacheHits:       b.CacheHits.Load(),
		ScoreCount:      b.ScoreCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSegmentNanos() int64 {
	count := b.SegmentCount.Load()
	if count == 0 {
		return 0
	}
	return b.SegmentTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SegmentCount    int64
	SegmentErrors   int64
	SegmentWords    int64
	SegmentAvgNanos int64
	CacheHits       int64
	ScoreCount      int64
}
