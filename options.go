package ratingchain

import "log/slog"

type options struct {
	order            Order
	minOverlap       int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Chain created by New.
//
// Chains derived from another chain (query results, clones, reversals)
// inherit its options.
type Option func(*options)

// WithOrder sets the direction the chain is kept sorted in.
// The default is Descending.
func WithOrder(order Order) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithMinOverlap sets the minimum number of shared movies Correlation needs.
// Below it the similarity is reported as undefined. Values below 1 keep the
// default, which only requires a non-empty intersection.
//
// When two chains disagree, the larger minimum applies, so a.Correlation(b)
// and b.Correlation(a) always agree:
//
//	alice := ratingchain.New(ratingchain.WithMinOverlap(5))
func WithMinOverlap(k int) Option {
	return func(o *options) {
		o.minOverlap = k
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &ratingchain.BasicMetricsCollector{}
//	c := ratingchain.New(ratingchain.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Avg latency: %dns\n", stats.InsertCount, stats.InsertAvgNanos)
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
//	logger := ratingchain.NewJSONLogger(slog.LevelDebug)
//	c := ratingchain.New(ratingchain.WithLogger(logger))
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
		order:            Descending,
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
	if o.order != Ascending {
		o.order = Descending
	}
	return o
}
