package wordseg

import (
	"log/slog"

	"github.com/hupe1980/wordseg/cache"
)

type options struct {
	limit            int
	digits           bool
	metricsCollector MetricsCollector
	logger           *Logger
	cache            *cache.Segmentations
}

// Option configures Segmenter constructor behavior.
type Option func(*options)

// WithLimit sets the maximum candidate word length in bytes.
// Values below 1 are ignored; the default is DefaultLimit.
//
// Raising the limit widens the search (more candidates per position),
// lowering it speeds it up at the cost of missing very long words.
func WithLimit(limit int) Option {
	return func(o *options) {
		if limit >= 1 {
			o.limit = limit
		}
	}
}

// WithDigits additionally accepts the bytes '0'-'9' in input text.
// Useful for identifiers like "catch22" or "area51"; the model must
// contain the numeric tokens for them to segment as units.
func WithDigits() Option {
	return func(o *options) {
		o.digits = true
	}
}

// WithCache configures an LRU result cache consulted before each search.
// Pass nil to disable caching (the default).
//
// Results served from the cache are copies and safe to retain; results
// from an uncached search are only valid until the Search is reused.
func WithCache(c *cache.Segmentations) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &wordseg.BasicMetricsCollector{}
//	seg, _ := wordseg.New(model, wordseg.WithMetricsCollector(metrics))
//	// ... use seg ...
//	stats := metrics.GetStats()
//	fmt.Printf("Segments: %d, Avg latency: %dns\n", stats.SegmentCount, stats.SegmentAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := wordseg.NewJSONLogger(slog.LevelInfo)
//	seg, _ := wordseg.New(model, wordseg.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		limit:            DefaultLimit,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
